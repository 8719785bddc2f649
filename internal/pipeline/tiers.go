package pipeline

import "github.com/forecourt-labs/shiftscan/internal/extract"

// outcomeKind drives the tier chain: ok stops it with a validated extract,
// retry advances to the next (more expensive) tier, fatal aborts the pipeline.
type outcomeKind int

const (
	outcomeOK outcomeKind = iota
	outcomeRetry
	outcomeFatal
)

type tierOutcome struct {
	kind    outcomeKind
	extract *extract.ShiftReport
	err     error
}

func tierOK(rep *extract.ShiftReport) tierOutcome {
	return tierOutcome{kind: outcomeOK, extract: rep}
}

func tierRetry(err error) tierOutcome {
	return tierOutcome{kind: outcomeRetry, err: err}
}

func tierFatal(err error) tierOutcome {
	return tierOutcome{kind: outcomeFatal, err: err}
}
