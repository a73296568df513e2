/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: quiz.go
Description: Tutor quiz over the example bank. Questions and scores are plain values held
by the caller; nothing here keeps state between calls.
*/

package examples

import (
	"fmt"
	"math/rand"

	"github.com/kleascm/chomsky-classifier/pkg/grammar"
)

const hierarchyHint = "Remember: Type 3 ⊂ Type 2 ⊂ Type 1 ⊂ Type 0. Each level allows more general productions."

// Question is a grammar to classify and its expected answer.
type Question struct {
	Name   string       `json:"name"`
	Text   string       `json:"text"`
	Answer grammar.Type `json:"answer"`
}

// Result is the verdict on a single answer.
type Result struct {
	Correct  bool         `json:"correct"`
	Expected grammar.Type `json:"expected"`
	Given    grammar.Type `json:"given"`
	Message  string       `json:"message"`
	Hint     string       `json:"hint"`
}

// Session is a running quiz score.
type Session struct {
	Asked   int `json:"asked"`
	Correct int `json:"correct"`
}

// NewQuestion draws a question uniformly from the whole bank.
func NewQuestion(rng *rand.Rand) Question {
	e := bank[rng.Intn(len(bank))]
	return Question{Name: e.Name, Text: e.Text, Answer: e.Label}
}

// Check grades answer against q.
func Check(q Question, answer grammar.Type) Result {
	r := Result{
		Correct:  answer == q.Answer,
		Expected: q.Answer,
		Given:    answer,
		Hint:     hierarchyHint,
	}
	if r.Correct {
		r.Message = fmt.Sprintf("Correct! The answer was %s.", q.Answer)
	} else {
		r.Message = fmt.Sprintf("Your answer: %s. Correct: %s.", answer, q.Answer)
	}
	return r
}

// Record returns the session updated with r.
func (s Session) Record(r Result) Session {
	s.Asked++
	if r.Correct {
		s.Correct++
	}
	return s
}

// Score returns the fraction of correct answers, 0 for an empty session.
func (s Session) Score() float64 {
	if s.Asked == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Asked)
}
