package countdown

// Field selects one component of a Value. It doubles as the active wheel segment.
type Field int

const (
	Hours Field = iota
	Minutes
	Seconds
)

var fieldNames = map[Field]string{
	Hours:   "hours",
	Minutes: "minutes",
	Seconds: "seconds",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// Next cycles hours -> minutes -> seconds -> hours.
func (f Field) Next() Field {
	return (f + 1) % 3
}
