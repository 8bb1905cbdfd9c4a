package lifecycle

// Action is an operation a party may invoke next.
type Action string

const (
	ActionAccept         Action = "ACCEPT"
	ActionReject         Action = "REJECT"
	ActionMarkAsLent     Action = "MARK_AS_LENT"
	ActionConfirmReceipt Action = "CONFIRM_RECEIPT"
	ActionMarkDone       Action = "MARK_DONE"
	ActionConfirmReturn  Action = "CONFIRM_RETURN"
	ActionSendMessage    Action = "SEND_MESSAGE"
)

// OwnerActions lists what the item owner may do with r. Confirmations that would
// be no-ops are left out.
func OwnerActions(it Item, r Request) []Action {
	return actions(it, r, it.OwnerID, false)
}

// RequesterActions lists what the requester (buyer / borrower) may do with r.
func RequesterActions(it Item, r Request) []Action {
	return actions(it, r, r.RequesterID, true)
}

// ActionsFor picks the owner or requester view for actor; a stranger gets none.
func ActionsFor(it Item, r Request, actor string) []Action {
	switch actor {
	case it.OwnerID:
		return OwnerActions(it, r)
	case r.RequesterID:
		return RequesterActions(it, r)
	}
	return []Action{}
}

func actions(it Item, r Request, actor string, asBorrower bool) []Action {
	out := []Action{}
	if checkDecide(it, r, actor, StatusAccepted) == nil {
		out = append(out, ActionAccept)
	}
	if checkDecide(it, r, actor, StatusRejected) == nil {
		out = append(out, ActionReject)
	}
	if checkMarkAsLent(it, r, actor) == nil {
		out = append(out, ActionMarkAsLent)
	}
	if checkConfirmReceipt(it, r, actor) == nil {
		out = append(out, ActionConfirmReceipt)
	}
	if checkMarkDone(it, r, actor) == nil {
		out = append(out, ActionMarkDone)
	}
	if already, err := checkConfirmReturn(it, r, actor, asBorrower); err == nil && !already {
		out = append(out, ActionConfirmReturn)
	}
	if CanMessage(r) == nil {
		if _, err := Counterparty(r, actor); err == nil {
			out = append(out, ActionSendMessage)
		}
	}
	return out
}

// Has reports whether a is in list.
func Has(list []Action, a Action) bool {
	for _, v := range list {
		if v == a {
			return true
		}
	}
	return false
}
