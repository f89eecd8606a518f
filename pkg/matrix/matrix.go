package matrix

import (
	"fmt"
	"os"

	"github.com/henderiw/rampart/pkg/bound"
	"github.com/henderiw/rampart/pkg/interval"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/yaml"
)

const (
	LabelRelation = "relation"
	LabelInverse  = "inverse"
	LabelX        = "x"
	LabelY        = "y"
)

// Document is a named set of intervals of one kind.
type Document struct {
	Kind      bound.Kind `json:"kind"`
	Separator string     `json:"separator,omitempty"`
	Intervals []Entry    `json:"intervals"`
}

type Entry struct {
	Name   string            `json:"name"`
	Value  string            `json:"value"`
	Labels map[string]string `json:"labels,omitempty"`
}

// Pair is the relation of interval X to interval Y.
type Pair struct {
	X        string            `json:"x"`
	Y        string            `json:"y"`
	Relation interval.Relation `json:"relation"`
	Labels   labels.Set        `json:"-"`
}

func (r Pair) String() string {
	return fmt.Sprintf("%s %s %s", r.X, r.Relation, r.Y)
}

func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %s", path)
	}
	return doc, nil
}

// Parse decodes and validates a yaml or json document.
func Parse(b []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.UnmarshalStrict(b, doc); err != nil {
		return nil, err
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *Document) validate() error {
	if !r.Kind.IsAKind() {
		return fmt.Errorf("unknown kind %s", r.Kind)
	}
	names := make(map[string]struct{}, len(r.Intervals))
	for _, e := range r.Intervals {
		if e.Name == "" {
			return fmt.Errorf("interval %q has no name", e.Value)
		}
		if _, ok := names[e.Name]; ok {
			return fmt.Errorf("interval %s is defined more than once", e.Name)
		}
		names[e.Name] = struct{}{}
		if _, err := bound.Describe(r.Kind, e.Value, r.Separator); err != nil {
			return errors.Wrapf(err, "interval %s", e.Name)
		}
	}
	return nil
}

// Relate returns the relation of every ordered pair of distinct intervals
// in document order, keeping the pairs whose labels match selector. A nil
// selector matches everything.
//
// The labels of a pair are its relation, its inverse, the two names and
// the labels of each interval prefixed with "x/" and "y/".
func Relate(doc *Document, selector labels.Selector) ([]Pair, error) {
	if selector == nil {
		selector = labels.Everything()
	}
	var pairs []Pair
	for i, x := range doc.Intervals {
		for j, y := range doc.Intervals {
			if i == j {
				continue
			}
			rel, err := bound.Relate(doc.Kind, x.Value, y.Value, doc.Separator)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot relate %s and %s", x.Name, y.Name)
			}
			p := Pair{
				X:        x.Name,
				Y:        y.Name,
				Relation: rel,
				Labels:   pairLabels(x, y, rel),
			}
			if selector.Matches(p.Labels) {
				pairs = append(pairs, p)
			}
		}
	}
	return pairs, nil
}

func pairLabels(x, y Entry, rel interval.Relation) labels.Set {
	set := labels.Set{
		LabelRelation: rel.String(),
		LabelInverse:  rel.Inverse().String(),
		LabelX:        x.Name,
		LabelY:        y.Name,
	}
	for k, v := range x.Labels {
		set[LabelX+"/"+k] = v
	}
	for k, v := range y.Labels {
		set[LabelY+"/"+k] = v
	}
	return set
}
