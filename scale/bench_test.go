package scale

import (
	"testing"

	"github.com/DragonZX/ZedGraph/xdate"
)

var (
	benchSteps StepSizes
	benchTicks []Tick
)

func BenchmarkSelectDateSteps(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSteps = selectDateSteps(1095, 7)
	}
}

func BenchmarkPickDate(b *testing.B) {
	min := xdate.FromCalendar(xdate.Calendar{Year: 2023, Month: 3, Day: 10, Hour: 6})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := NewDate(min, min+37.5)
		if err := d.Pick(PickConfig{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMajorTicks(b *testing.B) {
	min := xdate.FromCalendar(xdate.Calendar{Year: 2020, Month: 1, Day: 1})
	d := NewDate(min, min+1095)
	if err := d.Pick(PickConfig{}); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchTicks = d.MajorTicks()
	}
}
