package normalize_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/okian/pubgate/internal/domain/model"
	"github.com/okian/pubgate/internal/domain/normalize"
	"github.com/smartystreets/goconvey/convey"
)

func decode[T any](raw string) T {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		panic(err)
	}
	return v
}

func encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

const franceJSON = `[{"name":{"common":"France","official":"French Republic"},"capital":["Paris"],"population":67750000,"flag":"🇫🇷","region":"Europe","area":551695}]`

func TestCountry(t *testing.T) {
	convey.Convey("Given the restcountries payload for France", t, func() {
		raw := decode[[]model.Country](franceJSON)

		convey.Convey("When it is normalized", func() {
			out, err := normalize.Country(raw)

			convey.Convey("Then only the declared fields remain", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(encode(out), convey.ShouldEqual,
					`{"name":"France","capital":"Paris","population":67750000,"flag":"🇫🇷","region":"Europe"}`)
			})
		})

		convey.Convey("When it is normalized twice", func() {
			a, errA := normalize.Country(raw)
			b, errB := normalize.Country(raw)

			convey.Convey("Then the output is byte-identical", func() {
				convey.So(errA, convey.ShouldBeNil)
				convey.So(errB, convey.ShouldBeNil)
				convey.So(encode(a), convey.ShouldEqual, encode(b))
			})
		})
	})

	convey.Convey("Given an empty country list", t, func() {
		_, err := normalize.Country(nil)

		convey.Convey("Then it is an empty-list error", func() {
			convey.So(errors.Is(err, normalize.ErrNormalize), convey.ShouldBeTrue)
			convey.So(errors.Is(err, normalize.ErrEmptyList), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given a country without a capital", t, func() {
		raw := decode[[]model.Country](`[{"name":{"common":"Antarctica"},"capital":[],"population":1000,"flag":"🇦🇶","region":"Antarctic"}]`)
		_, err := normalize.Country(raw)

		convey.Convey("Then the capital list is reported empty", func() {
			convey.So(errors.Is(err, normalize.ErrEmptyList), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "capital")
		})
	})

	convey.Convey("Given a country without a population", t, func() {
		raw := decode[[]model.Country](`[{"name":{"common":"X"},"capital":["Y"],"flag":"f","region":"r"}]`)
		_, err := normalize.Country(raw)

		convey.Convey("Then the field is reported missing", func() {
			convey.So(errors.Is(err, normalize.ErrMissingField), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldEqual, "normalize failed: missing field: population")
		})
	})
}

func TestUniversities(t *testing.T) {
	convey.Convey("Given N university records for Japan", t, func() {
		const n = 4
		var records []model.University
		for i := 0; i < n; i++ {
			records = append(records, decode[model.University](fmt.Sprintf(
				`{"name":"University %d","country":"Japan","alpha_two_code":"JP","domains":["u%d.ac.jp"],"web_pages":["https://u%d.ac.jp/","https://alt%d.ac.jp/"]}`,
				i, i, i, i)))
		}

		convey.Convey("When the flat listing is built", func() {
			out, err := normalize.Universities("Japan", records)

			convey.Convey("Then every record keeps only name and primary website", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.Country, convey.ShouldEqual, "Japan")
				convey.So(out.Universities, convey.ShouldHaveLength, n)
				convey.So(out.Universities[2].Website, convey.ShouldEqual, "https://u2.ac.jp/")
				convey.So(encode(out.Universities[0]), convey.ShouldEqual, `{"name":"University 0","website":"https://u0.ac.jp/"}`)
			})
		})

		convey.Convey("When the grouped listing is built", func() {
			out, err := normalize.UniversitiesGrouped(records)

			convey.Convey("Then the country comes from the first record", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.Country, convey.ShouldEqual, "Japan")
				convey.So(out.Universities, convey.ShouldHaveLength, n)
			})
		})
	})

	convey.Convey("Given no university records", t, func() {
		convey.Convey("When the flat listing is built", func() {
			out, err := normalize.Universities("Atlantis", nil)

			convey.Convey("Then the array is empty but present", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(encode(out), convey.ShouldEqual, `{"country":"Atlantis","universities":[]}`)
			})
		})

		convey.Convey("When the grouped listing is built", func() {
			_, err := normalize.UniversitiesGrouped(nil)

			convey.Convey("Then it fails as an empty list", func() {
				convey.So(errors.Is(err, normalize.ErrEmptyList), convey.ShouldBeTrue)
			})
		})
	})

	convey.Convey("Given a record without web pages", t, func() {
		records := []model.University{decode[model.University](`{"name":"Nowhere U","country":"X","web_pages":[]}`)}
		_, err := normalize.Universities("X", records)

		convey.Convey("Then the listing fails", func() {
			convey.So(errors.Is(err, normalize.ErrEmptyList), convey.ShouldBeTrue)
		})
	})
}

func TestSimpleShapes(t *testing.T) {
	convey.Convey("Given the single-object upstream payloads", t, func() {
		convey.Convey("Dog renames message to image_url", func() {
			out, err := normalize.Dog(decode[model.DogImage](`{"message":"https://images.dog.ceo/breeds/hound/1.jpg","status":"success"}`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"image_url":"https://images.dog.ceo/breeds/hound/1.jpg"}`)

			_, err = normalize.Dog(decode[model.DogImage](`{"status":"error"}`))
			convey.So(errors.Is(err, normalize.ErrMissingField), convey.ShouldBeTrue)
		})

		convey.Convey("Cat takes the first image", func() {
			out, err := normalize.Cat(decode[[]model.CatImage](`[{"id":"a1","url":"https://cdn2.thecatapi.com/images/a1.jpg","width":640,"height":480},{"id":"b2","url":"x","width":1,"height":1}]`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"image_url":"https://cdn2.thecatapi.com/images/a1.jpg","width":640,"height":480}`)

			_, err = normalize.Cat([]model.CatImage{})
			convey.So(errors.Is(err, normalize.ErrEmptyList), convey.ShouldBeTrue)
		})

		convey.Convey("Joke keeps setup and punchline", func() {
			out, err := normalize.Joke(decode[model.Joke](`{"id":7,"type":"general","setup":"Why?","punchline":"Because."}`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"setup":"Why?","punchline":"Because."}`)

			_, err = normalize.Joke(decode[model.Joke](`{"setup":"Why?"}`))
			convey.So(errors.Is(err, normalize.ErrMissingField), convey.ShouldBeTrue)
		})

		convey.Convey("Advice unwraps the slip", func() {
			out, err := normalize.Advice(decode[model.AdviceSlip](`{"slip":{"id":1,"advice":"Drink water."}}`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"advice":"Drink water."}`)

			_, err = normalize.Advice(model.AdviceSlip{})
			convey.So(errors.Is(err, normalize.ErrMissingField), convey.ShouldBeTrue)
		})

		convey.Convey("Age passes a known age through", func() {
			out, err := normalize.Age(decode[model.AgePrediction](`{"count":120,"name":"michael","age":62}`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"name":"michael","predicted_age":62}`)
		})

		convey.Convey("Age keeps an unknown age as null", func() {
			out, err := normalize.Age(decode[model.AgePrediction](`{"count":0,"name":"zzqx","age":null}`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"name":"zzqx","predicted_age":null}`)
		})
	})

	convey.Convey("Given the list-shaped upstream payloads", t, func() {
		convey.Convey("Bored takes the first activity", func() {
			out, err := normalize.Bored(decode[[]model.Activity](`[{"activity":"Learn Go","type":"education","participants":1,"price":0,"key":"123"}]`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"activity":"Learn Go","type":"education","participants":1}`)

			_, err = normalize.Bored(nil)
			convey.So(errors.Is(err, normalize.ErrEmptyList), convey.ShouldBeTrue)
		})

		convey.Convey("Quote renames q and a", func() {
			out, err := normalize.Quote(decode[[]model.Quote](`[{"q":"Simplicity is prerequisite for reliability.","a":"Edsger Dijkstra","h":"<blockquote/>"}]`))
			convey.So(err, convey.ShouldBeNil)
			convey.So(encode(out), convey.ShouldEqual, `{"quote":"Simplicity is prerequisite for reliability.","author":"Edsger Dijkstra"}`)

			_, err = normalize.Quote([]model.Quote{{}})
			convey.So(errors.Is(err, normalize.ErrMissingField), convey.ShouldBeTrue)
		})
	})
}
