package football

import "sort"

// PlayerPositions maps the relational position codes to ontology classes.
var PlayerPositions = map[string]string{
	"GK": Namespace + "Goalkeeper",
	"DF": Namespace + "Defender",
	"MF": Namespace + "Midfielder",
	"FW": Namespace + "Forward",
}

// MatchStatuses maps fixture status codes to ontology classes.
var MatchStatuses = map[string]string{
	"SCHEDULED": Namespace + "ScheduledMatch",
	"LIVE":      Namespace + "LiveMatch",
	"FINISHED":  Namespace + "FinishedMatch",
	"CANCELLED": Namespace + "CancelledMatch",
	"POSTPONED": Namespace + "PostponedMatch",
}

// EventTypes maps fixture event codes to ontology classes.
var EventTypes = map[string]string{
	"GOAL":         Namespace + "GoalEvent",
	"CARD":         Namespace + "CardEvent",
	"SUBSTITUTION": Namespace + "SubstitutionEvent",
	"VAR":          Namespace + "VAREvent",
}

// PositionCodes lists the accepted player position codes.
var PositionCodes = codes(PlayerPositions)

// StatusCodes lists the accepted fixture status codes.
var StatusCodes = codes(MatchStatuses)

// EventCodes lists the accepted fixture event codes.
var EventCodes = codes(EventTypes)

func codes(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for code := range m {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
