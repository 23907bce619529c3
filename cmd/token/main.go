package main

import (
	"flag"
	"fmt"
	"os"

	actorapp "github.com/muhammadheryan/medsupply/application/actor"
	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
)

// token mints a bearer token for local runs, signed with JWT_SECRET.
//
//	go run ./cmd/token -role institute -id 1
func main() {
	role := flag.String("role", string(constant.RoleInstitute), "institute or manufacturer")
	id := flag.Uint64("id", 0, "institute or manufacturer id")
	flag.Parse()

	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}
	r := constant.ActorRole(*role)
	if *id == 0 || (r != constant.RoleInstitute && r != constant.RoleManufacturer) {
		flag.Usage()
		os.Exit(2)
	}

	token, err := actorapp.NewActorApp(cfg, nil, nil).IssueToken(model.Actor{ID: *id, Role: r})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
