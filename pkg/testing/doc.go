// Package testing provides a widget testing harness for kas-go.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := kastest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(widgets.NewRow(
//	        widgets.NewLabel("0"),
//	        widgets.NewTextButton("+", 1),
//	    ))
//
//	    // Simulate input; Tap pumps for you.
//	    tester.Tap(kastest.ByText("+"))
//
//	    // Assert on messages that reached the window.
//	    if got := tester.Messages(); len(got) != 1 || got[0] != 1 {
//	        t.Errorf("messages = %v", got)
//	    }
//	}
//
// Metrics default to terminal cells (theme.CellSizer), so sizes in
// assertions are small integers. Use SetSizeHandle for pixel metrics.
//
// # Timers
//
// Time comes from a FakeClock; nothing fires until the clock moves:
//
//	tester.PumpFor(time.Second)
//
// # Snapshot Testing
//
// Capture and compare layout snapshots:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.yaml")
//
// Update snapshots with:
//
//	KAS_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Errors
//
// While a tester is alive, reported errors and recovered panics go to its
// ErrorRecorder rather than standard error.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import kastest "github.com/kas-gui/kas-go/pkg/testing"
package testing
