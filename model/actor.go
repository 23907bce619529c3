package model

import "github.com/muhammadheryan/medsupply/constant"

// Actor is the verified caller identity attached to a request.
type Actor struct {
	ID   uint64
	Role constant.ActorRole
}
