package model_test

import (
	"testing"

	model "github.com/gullylabs/gully/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestMatch(t *testing.T) {
	convey.Convey("Given a Match record", t, func() {
		convey.Convey("When the winner cell holds a team name", func() {
			m := model.Match{ID: "1", Winner: "Mumbai Indians"}

			convey.Convey("Then it has a winner", func() {
				convey.So(m.HasWinner(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the winner cell is empty", func() {
			m := model.Match{ID: "2", Winner: ""}

			convey.Convey("Then it has no winner", func() {
				convey.So(m.HasWinner(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the winner cell is whitespace", func() {
			m := model.Match{ID: "3", Winner: "   "}

			convey.Convey("Then it has no winner", func() {
				convey.So(m.HasWinner(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the winner cell holds an NA token", func() {
			for _, token := range []string{"NA", "N/A", "null", "NULL", "NaN", "None"} {
				m := model.Match{ID: "4", Winner: token}
				convey.So(m.HasWinner(), convey.ShouldBeFalse)
			}
		})

		convey.Convey("When the winner cell holds a name resembling a token", func() {
			// Only exact tokens count as absent.
			m := model.Match{ID: "5", Winner: "Nagpur Nulls"}

			convey.Convey("Then it has a winner", func() {
				convey.So(m.HasWinner(), convey.ShouldBeTrue)
			})
		})
	})
}

func TestAbsent(t *testing.T) {
	convey.Convey("Given raw cell values", t, func() {
		convey.Convey("Then padded tokens are absent", func() {
			convey.So(model.Absent(" NA "), convey.ShouldBeTrue)
			convey.So(model.Absent("\tnull"), convey.ShouldBeTrue)
		})

		convey.Convey("Then case variants of tokens are kept", func() {
			// The token set is exact; "na" is a legitimate string.
			convey.So(model.Absent("na"), convey.ShouldBeFalse)
			convey.So(model.Absent("none"), convey.ShouldBeFalse)
		})

		convey.Convey("Then ordinary values are kept", func() {
			convey.So(model.Absent("Chennai Super Kings"), convey.ShouldBeFalse)
			convey.So(model.Absent("0"), convey.ShouldBeFalse)
		})
	})
}

func TestDelivery(t *testing.T) {
	convey.Convey("Given a Delivery record", t, func() {
		convey.Convey("When creating a scoring delivery", func() {
			d := model.Delivery{
				Batsman:     "V Kohli",
				BatsmanRuns: 4,
				Bowler:      "R Ashwin",
			}

			convey.Convey("Then it carries the raw fields", func() {
				convey.So(d.Batsman, convey.ShouldEqual, "V Kohli")
				convey.So(d.BatsmanRuns, convey.ShouldEqual, 4)
				convey.So(d.Bowler, convey.ShouldEqual, "R Ashwin")
				convey.So(d.DismissalKind, convey.ShouldEqual, "")
			})
		})

		convey.Convey("When creating a wicket delivery", func() {
			d := model.Delivery{
				Batsman:       "MS Dhoni",
				BatsmanRuns:   0,
				Bowler:        "JJ Bumrah",
				DismissalKind: "bowled",
			}

			convey.Convey("Then the dismissal kind is preserved verbatim", func() {
				convey.So(d.DismissalKind, convey.ShouldEqual, "bowled")
			})
		})

		convey.Convey("When creating a zero-value delivery", func() {
			d := model.Delivery{}

			convey.Convey("Then all fields default", func() {
				convey.So(d.Batsman, convey.ShouldEqual, "")
				convey.So(d.BatsmanRuns, convey.ShouldEqual, 0)
				convey.So(d.Bowler, convey.ShouldEqual, "")
				convey.So(d.DismissalKind, convey.ShouldEqual, "")
			})
		})
	})
}
