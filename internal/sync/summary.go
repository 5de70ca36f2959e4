package sync

// Failure records one script that did not complete, alongside its cause.
// Per-script failures never abort the rest of a batch; they land here and
// are reported at the end.
type Failure struct {
	Name string
	Err  error
}

// Summary is the outcome of one pull or push batch.
type Summary struct {
	Applied []string
	Skipped []string
	Failed  []Failure
}

func (s *Summary) applied(name string) {
	s.Applied = append(s.Applied, name)
}

func (s *Summary) skipped(name string) {
	s.Skipped = append(s.Skipped, name)
}

func (s *Summary) failed(name string, err error) {
	s.Failed = append(s.Failed, Failure{Name: name, Err: err})
}

// Clean reports whether every processed script completed.
func (s *Summary) Clean() bool {
	return len(s.Failed) == 0
}
