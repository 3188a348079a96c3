package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestParseProgramSnapshots pins the rendered form of representative
// programs against a golden file, the way the teacher's
// internal/interp/fixture_test.go pins interpreter output with go-snaps.
func TestParseProgramSnapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic":  "print 1 + 2 * 3 - 4 / 2;",
		"control_flow": `
let i = 0;
while (i < 3) {
  if (i == 1) { print "one"; } else { print i; }
  i = i + 1;
}
`,
		"class_with_inheritance": `
class Animal {
  init(name) { this.name = name; }
  speak() { return this.name + " makes a sound"; }
}
class Dog: Animal {
  speak() { return super.speak() + " (bark)"; }
}
`,
		"closures": `
def make(n) {
  def inner() { return n; }
  return inner;
}
`,
	}

	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			prog, errs := parse(t, src)
			requireNoErrors(t, errs)
			snaps.MatchSnapshot(t, prog.String())
		})
	}
}
