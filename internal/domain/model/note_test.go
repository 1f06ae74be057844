package model_test

import (
	"testing"
	"time"

	model "github.com/okian/quickmed/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestNoteRecord(t *testing.T) {
	convey.Convey("Given a NoteRecord", t, func() {
		ts := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.Local)

		convey.Convey("When it carries a timestamp", func() {
			rec := model.NoteRecord{Timestamp: ts, CalculatorType: "BMI"}

			convey.Convey("Then it should format as YYYY-MM-DD HH:MM:SS", func() {
				convey.So(rec.FormattedTimestamp(), convey.ShouldEqual, "2024-03-07 09:05:03")
			})

			convey.Convey("And it should be valid", func() {
				convey.So(rec.Valid(), convey.ShouldBeTrue)
				convey.So(rec.IsManual(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When it has zero values", func() {
			rec := model.NoteRecord{}

			convey.Convey("Then it should not be valid", func() {
				convey.So(rec.FormattedTimestamp(), convey.ShouldEqual, "")
				convey.So(rec.Valid(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the calculator type is blank", func() {
			rec := model.NoteRecord{Timestamp: ts, CalculatorType: "  "}

			convey.Convey("Then it should not be valid", func() {
				convey.So(rec.Valid(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When it is a manual note", func() {
			rec := model.NoteRecord{Timestamp: ts, CalculatorType: model.ManualNote, Notes: "follow up"}

			convey.Convey("Then it should report itself as manual", func() {
				convey.So(rec.IsManual(), convey.ShouldBeTrue)
				convey.So(rec.Valid(), convey.ShouldBeTrue)
			})
		})
	})
}
