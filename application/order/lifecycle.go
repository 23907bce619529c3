package order

import (
	"fmt"
	"time"

	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	"github.com/muhammadheryan/medsupply/utils/errors"
)

// outcome is what a transition did to the order. status is the value the
// acting side moved to; reconcile is set when this transition was the second
// side to reach DELIVERED.
type outcome struct {
	status    constant.OrderStatus
	reconcile bool
}

func invalidTransition(side string, got, want constant.OrderStatus) error {
	return errors.SetCustomErrorf(constant.ErrInvalidTransition,
		fmt.Sprintf("%s status is %s, expected %s", side, got, want))
}

func stampDelivery(o *model.OrderEntity, now time.Time) {
	if o.DeliveryDate == nil {
		t := now
		o.DeliveryDate = &t
	}
}

// manufacturerAccept approves both sides at once.
func manufacturerAccept(o *model.OrderEntity, _ time.Time) (outcome, error) {
	if o.ManufacturerStatus != constant.OrderStatusPending {
		return outcome{}, invalidTransition("manufacturer", o.ManufacturerStatus, constant.OrderStatusPending)
	}
	o.ManufacturerStatus = constant.OrderStatusApproved
	o.InstituteStatus = constant.OrderStatusApproved
	o.Remarks = constant.RemarksApproved
	return outcome{status: constant.OrderStatusApproved}, nil
}

// manufacturerReject is terminal and propagates to the institute side.
func manufacturerReject(o *model.OrderEntity, now time.Time) (outcome, error) {
	if o.ManufacturerStatus != constant.OrderStatusPending {
		return outcome{}, invalidTransition("manufacturer", o.ManufacturerStatus, constant.OrderStatusPending)
	}
	o.ManufacturerStatus = constant.OrderStatusRejected
	o.InstituteStatus = constant.OrderStatusRejected
	o.Remarks = constant.RemarksRejected
	stampDelivery(o, now)
	return outcome{status: constant.OrderStatusRejected}, nil
}

func manufacturerMarkDelivered(o *model.OrderEntity, now time.Time) (outcome, error) {
	if o.ManufacturerStatus != constant.OrderStatusApproved {
		return outcome{}, invalidTransition("manufacturer", o.ManufacturerStatus, constant.OrderStatusApproved)
	}
	o.ManufacturerStatus = constant.OrderStatusDelivered
	stampDelivery(o, now)

	out := outcome{status: constant.OrderStatusDelivered}
	if o.InstituteStatus == constant.OrderStatusDelivered && !o.Reconciled {
		out.reconcile = true
		o.Remarks = constant.RemarksCompleted
	} else {
		o.Remarks = constant.RemarksManufacturerDelivery
	}
	return out, nil
}

// instituteMarkDelivered withdraws a stale approval instead of delivering when
// the manufacturer has already rejected the order.
func instituteMarkDelivered(o *model.OrderEntity, now time.Time) (outcome, error) {
	if o.InstituteStatus != constant.OrderStatusApproved {
		return outcome{}, invalidTransition("institute", o.InstituteStatus, constant.OrderStatusApproved)
	}
	if o.ManufacturerStatus == constant.OrderStatusRejected {
		o.InstituteStatus = constant.OrderStatusRejected
		o.Remarks = constant.RemarksStaleApproval
		stampDelivery(o, now)
		return outcome{status: constant.OrderStatusRejected}, nil
	}

	o.InstituteStatus = constant.OrderStatusDelivered
	stampDelivery(o, now)

	out := outcome{status: constant.OrderStatusDelivered}
	if o.ManufacturerStatus == constant.OrderStatusDelivered && !o.Reconciled {
		out.reconcile = true
		o.Remarks = constant.RemarksCompleted
	} else {
		o.Remarks = constant.RemarksInstituteDelivery
	}
	return out, nil
}
