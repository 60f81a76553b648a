// Package engine implements the carbon-footprint scoring and aggregation
// core: the answer store, the per-question scoring rules, and the derivation
// of the analytics snapshot consumed by charts and reports.
//
// All operations are pure, synchronous computations over in-memory data.
// Scoring never fails: malformed or unknown input degrades to a zero
// contribution, so the total is always a finite, non-negative number.
package engine

// Answer is one (question, raw value, computed emissions) record. Raw values
// are kept as entered: numeric answers in decimal string form, single-choice
// answers as the selected option value.
type Answer struct {
	QuestionID string  `json:"questionId"`
	Value      string  `json:"value"`
	Emissions  float64 `json:"emissions"`
}

// Store is the ordered collection of answers for one calculator session.
// At most one answer exists per question ID (upsert semantics). The store is
// owned by a single session and mutated sequentially; it is not safe for
// concurrent use.
type Store struct {
	answers []Answer
}

// NewStore returns an empty answer store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith returns a store pre-populated with the given answers, keeping
// their order. Used when restoring a cached session.
func NewStoreWith(answers []Answer) *Store {
	s := &Store{}
	for _, a := range answers {
		s.Put(a)
	}
	return s
}

// Put inserts the answer, replacing any existing answer for the same
// question in place.
func (s *Store) Put(a Answer) {
	for i := range s.answers {
		if s.answers[i].QuestionID == a.QuestionID {
			s.answers[i] = a
			return
		}
	}
	s.answers = append(s.answers, a)
}

// Get returns the answer for the given question ID.
func (s *Store) Get(questionID string) (Answer, bool) {
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// Answers returns a copy of the stored answers in insertion order.
func (s *Store) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Len returns the number of stored answers.
func (s *Store) Len() int {
	return len(s.answers)
}

// Clear removes all answers. Used on questionnaire restart.
func (s *Store) Clear() {
	s.answers = s.answers[:0]
}

// setEmissions rewrites the stored emissions for a question without touching
// its raw value. Only the renewable-energy recompute step uses this.
func (s *Store) setEmissions(questionID string, emissions float64) bool {
	for i := range s.answers {
		if s.answers[i].QuestionID == questionID {
			s.answers[i].Emissions = emissions
			return true
		}
	}
	return false
}
