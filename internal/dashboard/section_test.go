package dashboard

import (
	"io"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSection is a minimal Section implementation for registry tests.
type stubSection struct {
	name string
	desc string
	err  error

	calls atomic.Int32
}

func (s *stubSection) Name() string        { return s.name }
func (s *stubSection) Description() string { return s.desc }
func (s *stubSection) Build(_ Input) (Panel, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return stubPanel{name: s.name}, nil
}

type stubPanel struct{ name string }

func (p stubPanel) Data() any { return p.name }
func (p stubPanel) Render(w io.Writer) error {
	_, err := io.WriteString(w, "stub:"+p.name+"\n")
	return err
}

// restoreSections resets the registry and re-registers the built-in sections.
func restoreSections() {
	resetForTesting()
	Register(summarySection{})
	Register(yearlySection{})
	Register(countriesSection{})
	Register(mapSection{})
	Register(proportionsSection{})
}

func TestBuiltinSections_Order(t *testing.T) {
	assert.Equal(t, []string{"summary", "yearly", "countries", "map", "proportions"}, List())
	for _, name := range List() {
		s := Get(name)
		require.NotNil(t, s, name)
		assert.NotEmpty(t, s.Description(), name)
	}
}

func TestRegister_And_Get(t *testing.T) {
	resetForTesting()
	defer restoreSections()

	Register(&stubSection{name: "test-section", desc: "A test section"})

	got := Get("test-section")
	require.NotNil(t, got)
	assert.Equal(t, "test-section", got.Name())
	assert.Equal(t, "A test section", got.Description())
}

func TestRegister_DuplicatePanics(t *testing.T) {
	resetForTesting()
	defer restoreSections()

	Register(&stubSection{name: "dup"})
	assert.Panics(t, func() {
		Register(&stubSection{name: "dup"})
	})
}

func TestGet_NotFound(t *testing.T) {
	assert.Nil(t, Get("nonexistent"))
}

func TestList_ReturnsCopy(t *testing.T) {
	names := List()
	names[0] = "mutated"
	assert.Equal(t, "summary", List()[0])
}

func TestResolveSections(t *testing.T) {
	names, unknown := ResolveSections(nil)
	assert.Equal(t, List(), names)
	assert.Nil(t, unknown)

	names, unknown = ResolveSections([]string{"map", "bogus", "yearly", "map"})
	assert.Equal(t, []string{"map", "yearly"}, names)
	assert.Equal(t, []string{"bogus"}, unknown)
}
