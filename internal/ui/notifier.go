package ui

import "github.com/techcorp/hrmate/internal/assistant/toolset"

// ChannelNotifier bridges tool side effects into the Bubble Tea event
// loop. Sends never block: if the UI has not drained a previous event the
// new one is dropped, which is acceptable for display-only signals.
type ChannelNotifier struct {
	policyOpened chan string
	draftReady   chan toolset.DraftLeave
}

func NewChannelNotifier() *ChannelNotifier {
	return &ChannelNotifier{
		policyOpened: make(chan string, 4),
		draftReady:   make(chan toolset.DraftLeave, 4),
	}
}

func (n *ChannelNotifier) PolicyOpened(policyID string) {
	select {
	case n.policyOpened <- policyID:
	default:
	}
}

func (n *ChannelNotifier) DraftReady(draft toolset.DraftLeave) {
	select {
	case n.draftReady <- draft:
	default:
	}
}
