package hop

import "strings"

// ExampleArgument is the placeholder argument used to show where a hop leads.
const ExampleArgument = "EXAMPLE"

/*
Hop is a URL transformation scheme: a strategy Kind plus the base URL it
builds on. Hops are plain values and Apply has no side effects, so they can
be shared freely between goroutines.
*/
type Hop struct {
	Kind Kind   `yaml:"kind"`
	Base string `yaml:"base"`
}

// New returns a hop of the given kind rooted at base.
func New(kind Kind, base string) Hop {
	return Hop{Kind: kind, Base: base}
}

// Apply builds the destination URL for args. Some branches encode the result
// and some deliberately leave it raw; see the per-kind helpers.
func (h Hop) Apply(t Tables, args string) string {
	w := h.Base
	switch h.Kind {
	case Basic:
		return Encode(w + args)
	case Dashboard:
		if fragment, ok := t.Dashboards[args]; ok {
			return w + "dashboard/" + fragment
		}
		return Encode(w + "lists?q=" + args)
	case GitLab:
		// A slash means the argument is already a project path.
		if strings.Contains(args, "/") {
			return w + args
		}
		return Encode(w + "search?utf8=✓&search=" + args)
	case Jira:
		return jira(w, args)
	case Kanban:
		if fragment, ok := t.Boards[args]; ok {
			return w + "secure/RapidBoard.jspa?rapidView=" + fragment
		}
		return w + "secure/RapidBoard.jspa"
	case OfficeSpace:
		if args != "" {
			return Encode(w + "visual-directory/search/" + args)
		}
		return w + "portal"
	case Proctor:
		if args != "" {
			return Encode(w + "definition/" + args)
		}
		return w
	case Runbook:
		if fragment, ok := t.Runbooks[args]; ok {
			return w + fragment
		}
		return w
	case Sandbox:
		// args becomes part of the host name verbatim.
		return "https://" + args + "." + w
	case SourceGraph:
		return sourceGraph(w, t.SourceGraphFlags, args)
	case Workday:
		if args != "" {
			return Encode(w + "search.htmld?q=" + args)
		}
		return w + "home.htmld"
	}
	return w
}

// Example is the URL the hop produces for ExampleArgument.
func (h Hop) Example(t Tables) string {
	return h.Apply(t, ExampleArgument)
}

func jira(w, args string) string {
	switch {
	case args == "create" || args == "new":
		return w + "secure/CreateIssue!default.jspa"
	case args != "":
		return w + "browse/" + args
	default:
		return w + "issues/?filter=-1"
	}
}
