package core

import (
	"testing"

	"github.com/kas-gui/kas-go/pkg/geom"
)

func TestIsAncestorOf(t *testing.T) {
	var c CoreData
	if c.IsAncestorOf(1) {
		t.Error("unconfigured widget should own no ids")
	}

	c.SetID(4)
	c.SetLastID(9)
	tests := []struct {
		id   WidgetID
		want bool
	}{
		{3, false},
		{4, true},
		{7, true},
		{9, true},
		{10, false},
		{NoWidget, false},
	}
	for _, tt := range tests {
		if got := c.IsAncestorOf(tt.id); got != tt.want {
			t.Errorf("IsAncestorOf(%v) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestSetIDResetsRange(t *testing.T) {
	var c CoreData
	c.SetID(2)
	c.SetLastID(20)
	c.SetID(5)
	first, last := c.IDRange()
	if first != 5 || last != 5 {
		t.Errorf("IDRange = %v..%v, want #5..#5", first, last)
	}
}

func TestWidgetIDString(t *testing.T) {
	if got := NoWidget.String(); got != "#none" {
		t.Errorf("NoWidget.String() = %q", got)
	}
	if got := WidgetID(12).String(); got != "#12" {
		t.Errorf("String() = %q, want #12", got)
	}
}

func TestStoreRect(t *testing.T) {
	var c CoreData
	r := geom.RectXYWH(1, 2, 3, 4)
	c.StoreRect(r)
	if c.Core().Rect() != r {
		t.Errorf("Rect() = %v, want %v", c.Rect(), r)
	}
}
