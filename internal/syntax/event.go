package syntax

import "fmt"

// EventKind tags an Event.
type EventKind uint8

const (
	EventStart  EventKind = iota // open a node
	EventFinish                  // close the innermost open node
	EventToken                   // attach a token to the innermost open node
	EventError                   // record a diagnostic
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "Start"
	case EventFinish:
		return "Finish"
	case EventToken:
		return "Token"
	case EventError:
		return "Error"
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is one entry of the parser's flat output log.
//
// A Start event's Syntax is KindNone until its marker is completed.
// ForwardParent, when non-zero, is the distance from this Start to the
// Start of the node that must enclose it; it is set by precede and always
// points forward.
type Event struct {
	Kind          EventKind
	Syntax        SyntaxKind
	ForwardParent int
	Token         Token
	Err           *SyntaxError
}

func (e Event) String() string {
	switch e.Kind {
	case EventStart:
		if e.ForwardParent != 0 {
			return fmt.Sprintf("Start(%s, +%d)", e.Syntax, e.ForwardParent)
		}
		return fmt.Sprintf("Start(%s)", e.Syntax)
	case EventToken:
		return fmt.Sprintf("Token(%s)", e.Token)
	case EventError:
		return fmt.Sprintf("Error(%s)", e.Err.Kind)
	}
	return e.Kind.String()
}

// build replays events into a tree. The events are consumed: Start events
// reached through a forward-parent chain are overwritten with tombstones.
//
// A malformed log (unbalanced Start/Finish, a chain that leaves the log
// or lands on a non-Start event, several roots) is a bug in the grammar,
// so build panics instead of reporting it.
func build(src string, events []Event) (*Node, []*SyntaxError) {
	var (
		root   *Node
		stack  []*Node
		errs   []*SyntaxError
		chain  []SyntaxKind
		offset int
	)

	for i := range events {
		switch ev := events[i]; ev.Kind {
		case EventStart:
			if ev.Syntax == KindNone && ev.ForwardParent == 0 {
				continue // tombstone
			}
			chain = chain[:0]
			for j := i; ; {
				if j >= len(events) || events[j].Kind != EventStart {
					panic(fmt.Sprintf("syntax: malformed event stream: forward parent of event %d is not a start event", i))
				}
				kind, fp := events[j].Syntax, events[j].ForwardParent
				events[j] = Event{Kind: EventStart}
				if kind != KindNone {
					chain = append(chain, kind)
				}
				if fp == 0 {
					break
				}
				j += fp
			}
			if root != nil && len(stack) == 0 {
				panic("syntax: malformed event stream: more than one root")
			}
			for k := len(chain) - 1; k >= 0; k-- {
				stack = append(stack, &Node{kind: chain[k], start: offset, end: offset, src: src})
			}

		case EventFinish:
			if len(stack) == 0 {
				panic(fmt.Sprintf("syntax: malformed event stream: finish at event %d without open node", i))
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n.end = offset
			if len(stack) == 0 {
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, Element{Node: n})
			}

		case EventToken:
			if len(stack) == 0 {
				panic(fmt.Sprintf("syntax: malformed event stream: token %s outside of any node", ev.Token))
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, Element{Token: ev.Token})
			offset = ev.Token.End

		case EventError:
			errs = append(errs, ev.Err)
		}
	}

	if len(stack) != 0 {
		panic(fmt.Sprintf("syntax: malformed event stream: %d unfinished nodes", len(stack)))
	}
	if root == nil {
		panic("syntax: malformed event stream: no root node")
	}
	return root, errs
}
