package memory

// DefaultFirstAccountNumber is where account numbering starts unless configured otherwise.
const DefaultFirstAccountNumber int64 = 1001

// Sequence hands out strictly increasing account numbers.
type Sequence struct {
	next int64
}

// NewSequence returns a sequence whose first value is start.
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current number and advances the sequence.
func (s *Sequence) Next() int64 {
	n := s.next
	s.next++
	return n
}

// Peek returns the number the next call to Next will hand out.
func (s *Sequence) Peek() int64 {
	return s.next
}
