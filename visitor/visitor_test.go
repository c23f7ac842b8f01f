package visitor_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gopatterns/visitor"
)

func TestFeedingVisitor_PerSpeciesLines(t *testing.T) {
	tests := []struct {
		name   string
		animal visitor.Animal
		want   string
	}{
		{"lion", &visitor.Lion{}, "Feeding the lion meat.\n"},
		{"penguin", &visitor.Penguin{}, "Feeding the penguin fish.\n"},
		{"elephant", &visitor.Elephant{}, "Feeding the elephant bananas.\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.animal.Accept(visitor.NewFeeding(&buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestHealthCheckVisitor_PerSpeciesLines(t *testing.T) {
	tests := []struct {
		name   string
		animal visitor.Animal
		want   string
	}{
		{"lion", &visitor.Lion{}, "Checking the lion's teeth.\n"},
		{"penguin", &visitor.Penguin{}, "Checking the penguin's feathers.\n"},
		{"elephant", &visitor.Elephant{}, "Checking the elephant's tusks.\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.animal.Accept(visitor.NewHealthCheck(&buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestDoubleDispatch_RoutesByConcreteType(t *testing.T) {
	c := &tally{}
	zoo := []visitor.Animal{
		&visitor.Lion{}, &visitor.Penguin{}, &visitor.Elephant{},
		&visitor.Lion{}, &visitor.Lion{},
	}
	for _, a := range zoo {
		a.Accept(c)
	}

	assert.Equal(t, 3, c.lions)
	assert.Equal(t, 1, c.penguins)
	assert.Equal(t, 1, c.elephants)
}

// tally is an AnimalVisitor that only counts.
type tally struct {
	lions, penguins, elephants int
}

func (t *tally) VisitLion(*visitor.Lion)         { t.lions++ }
func (t *tally) VisitPenguin(*visitor.Penguin)   { t.penguins++ }
func (t *tally) VisitElephant(*visitor.Elephant) { t.elephants++ }
