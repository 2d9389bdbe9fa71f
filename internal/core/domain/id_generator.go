package domain

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// IDGenerator produces the correlation ID stamped on every log line of a run.
type IDGenerator interface {
	Generate() (string, error)
}
