package animals

import "testing"

func TestSelect(t *testing.T) {
	cases := []struct {
		action     Action
		privileged bool
		shape      Shape
		breed      bool
		appts      bool
	}{
		{ActionList, false, ShapeList, false, false},
		{ActionList, true, ShapeListWithAppointments, false, true},
		{ActionRetrieve, false, ShapeDetail, true, false},
		{ActionRetrieve, true, ShapeDetailWithAppointments, true, true},
		{ActionCreate, false, ShapeDetail, true, false},
		{ActionUpdate, false, ShapeDetail, true, false},
		{ActionPartialUpdate, true, ShapeDetailWithAppointments, true, true},
	}
	for _, tc := range cases {
		p := Select(tc.action, tc.privileged)
		if p.Shape != tc.shape {
			t.Fatalf("%s/%v: expected shape %d, got %d", tc.action, tc.privileged, tc.shape, p.Shape)
		}
		if p.Prefetch.Has(PrefetchBreed) != tc.breed {
			t.Fatalf("%s/%v: breed prefetch = %v", tc.action, tc.privileged, p.Prefetch.Has(PrefetchBreed))
		}
		if p.Prefetch.Has(PrefetchAppointments) != tc.appts {
			t.Fatalf("%s/%v: appointments prefetch = %v", tc.action, tc.privileged, p.Prefetch.Has(PrefetchAppointments))
		}
		if p.Shape.WithAppointments() != tc.privileged {
			t.Fatalf("%s/%v: shape leaks or hides appointments", tc.action, tc.privileged)
		}
	}
}

func TestSelect_UnknownActionIsUnprivilegedDetail(t *testing.T) {
	p := Select(Action("destroy"), true)
	if p.Shape != ShapeDetail || p.Prefetch.Has(PrefetchAppointments) {
		t.Fatalf("unexpected plan %+v", p)
	}
}
