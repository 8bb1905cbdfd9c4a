// Package lifecycle holds the request state machine of the exchange:
//
//	PENDING -> ACCEPTED | REJECTED
//	ACCEPTED -> DONE
//
// LEND items add a handover while ACCEPTED (owner marks lent, borrower confirms
// receipt, both required before DONE) and a two-party return confirmation after
// DONE. REJECTED and DONE are absorbing.
//
// Every function here is pure: it validates against the snapshot it is given and
// returns a new Request or an *Error. Serializing concurrent callers is the
// store's job.
package lifecycle

import "time"

// Create opens a PENDING request by requesterID against it. open holds the
// requester's existing requests for the same item, read atomically with it.
func Create(it Item, requesterID string, open []Request, id string, now time.Time) (Request, error) {
	if it.ID == "" || requesterID == "" || id == "" {
		return Request{}, fail(OpCreate, KindInvalidArgument, "item, requester and id are required")
	}
	if it.OwnerID == requesterID {
		return Request{}, fail(OpCreate, KindSelfRequest, "cannot request own item")
	}
	if it.Status != ItemAvailable {
		return Request{}, fail(OpCreate, KindItemUnavailable, "item is "+string(it.Status))
	}
	for _, o := range open {
		if o.ItemID == it.ID && o.RequesterID == requesterID && IsOpen(o) {
			return Request{}, fail(OpCreate, KindDuplicateRequest, "request "+o.ID+" is still "+string(o.Status))
		}
	}
	return Request{
		ID:          id,
		ItemID:      it.ID,
		RequesterID: requesterID,
		OwnerID:     it.OwnerID,
		Status:      StatusPending,
		CreatedAt:   now,
	}, nil
}

// Decide accepts or rejects a PENDING request. Sibling requests are left as they
// are; accepting needs the item to still be AVAILABLE.
func Decide(it Item, r Request, actor string, decision RequestStatus, now time.Time) (Request, error) {
	if err := checkDecide(it, r, actor, decision); err != nil {
		return Request{}, err
	}
	r.Status = decision
	r.DecidedAt = timePtr(now)
	return r, nil
}

func MarkAsLent(it Item, r Request, actor string, now time.Time) (Request, error) {
	if err := checkMarkAsLent(it, r, actor); err != nil {
		return Request{}, err
	}
	r.LenderMarkedAsLent = true
	r.LentAt = timePtr(now)
	return r, nil
}

func ConfirmReceipt(it Item, r Request, actor string, now time.Time) (Request, error) {
	if err := checkConfirmReceipt(it, r, actor); err != nil {
		return Request{}, err
	}
	r.BorrowerConfirmedReceipt = true
	r.ReceivedAt = timePtr(now)
	return r, nil
}

// MarkDone closes the accept dimension. A SELL request is complete at this point;
// a LEND request still waits for both return confirmations.
func MarkDone(it Item, r Request, actor string, now time.Time) (Request, error) {
	if err := checkMarkDone(it, r, actor); err != nil {
		return Request{}, err
	}
	r.Status = StatusDone
	r.DoneAt = timePtr(now)
	if it.Type == ItemTypeSell {
		r.CompletedAt = timePtr(now)
	}
	return r, nil
}

// ConfirmReturn records one party's return confirmation. Confirming twice with
// the same role returns r unchanged.
func ConfirmReturn(it Item, r Request, actor string, asBorrower bool, now time.Time) (Request, error) {
	already, err := checkConfirmReturn(it, r, actor, asBorrower)
	if err != nil {
		return Request{}, err
	}
	if already {
		return r, nil
	}
	if asBorrower {
		r.BorrowerConfirmedReturn = true
	} else {
		r.LenderConfirmedReturn = true
	}
	if r.BorrowerConfirmedReturn && r.LenderConfirmedReturn {
		r.CompletedAt = timePtr(now)
	}
	return r, nil
}

// CanMessage: メッセージは ACCEPTED / DONE のリクエストのみ
func CanMessage(r Request) error {
	if r.Status != StatusAccepted && r.Status != StatusDone {
		return fail(OpMessage, KindInvalidState, "messages need an accepted request")
	}
	return nil
}

// Counterparty returns the party on the other side of r from sender.
func Counterparty(r Request, sender string) (string, error) {
	switch sender {
	case r.RequesterID:
		return r.OwnerID, nil
	case r.OwnerID:
		return r.RequesterID, nil
	}
	return "", fail(OpMessage, KindWrongRole, "sender is not a party of the request")
}

// ---------- guards ----------

// Each guard is the full precondition of its operation; Actions is built from
// the same functions.

func checkSnapshot(op Op, it Item, r Request) error {
	if r.ItemID != it.ID || r.OwnerID != it.OwnerID {
		return fail(op, KindInvalidArgument, "request does not belong to item")
	}
	return nil
}

func checkDecide(it Item, r Request, actor string, decision RequestStatus) error {
	if err := checkSnapshot(OpDecide, it, r); err != nil {
		return err
	}
	if decision != StatusAccepted && decision != StatusRejected {
		return fail(OpDecide, KindInvalidArgument, "decision must be ACCEPTED or REJECTED")
	}
	if actor != it.OwnerID {
		return fail(OpDecide, KindNotOwner, "only the item owner can decide")
	}
	if r.Status != StatusPending {
		return fail(OpDecide, KindInvalidState, "request is "+string(r.Status))
	}
	if decision == StatusAccepted && it.Status != ItemAvailable {
		return fail(OpDecide, KindItemUnavailable, "item is "+string(it.Status))
	}
	return nil
}

func checkMarkAsLent(it Item, r Request, actor string) error {
	if err := checkSnapshot(OpMarkAsLent, it, r); err != nil {
		return err
	}
	if actor != it.OwnerID {
		return fail(OpMarkAsLent, KindWrongRole, "only the lender can mark as lent")
	}
	if it.Type != ItemTypeLend {
		return fail(OpMarkAsLent, KindInvalidTransition, "item is not lendable")
	}
	if r.Status != StatusAccepted {
		return fail(OpMarkAsLent, KindInvalidState, "request is "+string(r.Status))
	}
	if r.LenderMarkedAsLent {
		return fail(OpMarkAsLent, KindInvalidTransition, "already marked as lent")
	}
	return nil
}

func checkConfirmReceipt(it Item, r Request, actor string) error {
	if err := checkSnapshot(OpConfirmReceipt, it, r); err != nil {
		return err
	}
	if actor != r.RequesterID {
		return fail(OpConfirmReceipt, KindWrongRole, "only the borrower can confirm receipt")
	}
	if it.Type != ItemTypeLend {
		return fail(OpConfirmReceipt, KindInvalidTransition, "item is not lendable")
	}
	if r.Status != StatusAccepted {
		return fail(OpConfirmReceipt, KindInvalidState, "request is "+string(r.Status))
	}
	if !r.LenderMarkedAsLent {
		return fail(OpConfirmReceipt, KindInvalidTransition, "lender has not marked the item as lent")
	}
	if r.BorrowerConfirmedReceipt {
		return fail(OpConfirmReceipt, KindInvalidTransition, "receipt already confirmed")
	}
	return nil
}

func checkMarkDone(it Item, r Request, actor string) error {
	if err := checkSnapshot(OpMarkDone, it, r); err != nil {
		return err
	}
	if actor != it.OwnerID && actor != r.RequesterID {
		return fail(OpMarkDone, KindWrongRole, "only a party of the request can mark it done")
	}
	if r.Status != StatusAccepted {
		return fail(OpMarkDone, KindInvalidState, "request is "+string(r.Status))
	}
	if it.Type == ItemTypeLend && !(r.LenderMarkedAsLent && r.BorrowerConfirmedReceipt) {
		return fail(OpMarkDone, KindInvalidTransition, "handover is not confirmed")
	}
	return nil
}

// checkConfirmReturn reports already=true when the flag for the claimed role is set.
func checkConfirmReturn(it Item, r Request, actor string, asBorrower bool) (already bool, err error) {
	if err := checkSnapshot(OpConfirmReturn, it, r); err != nil {
		return false, err
	}
	if asBorrower && actor != r.RequesterID {
		return false, fail(OpConfirmReturn, KindWrongRole, "actor is not the borrower")
	}
	if !asBorrower && actor != it.OwnerID {
		return false, fail(OpConfirmReturn, KindWrongRole, "actor is not the lender")
	}
	if r.Status != StatusDone {
		return false, fail(OpConfirmReturn, KindInvalidState, "request is "+string(r.Status))
	}
	if it.Type != ItemTypeLend {
		return false, fail(OpConfirmReturn, KindInvalidTransition, "item is not lendable")
	}
	if asBorrower {
		return r.BorrowerConfirmedReturn, nil
	}
	return r.LenderConfirmedReturn, nil
}
