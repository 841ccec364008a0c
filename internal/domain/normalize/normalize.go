// Package normalize maps raw upstream payloads onto the gateway's response shapes.
//
// Every function is pure. A missing field or an empty list where the first
// element is needed is an error, never a partially filled result.
package normalize

import (
	"github.com/okian/pubgate/internal/domain/model"
	"github.com/okian/pubgate/internal/domain/types"
)

// Dog maps message -> image_url.
func Dog(raw model.DogImage) (types.DogImage, error) {
	url, err := required("message", raw.Message)
	if err != nil {
		return types.DogImage{}, err
	}
	return types.DogImage{ImageURL: url}, nil
}

// Cat takes the first search result.
func Cat(raw []model.CatImage) (types.CatImage, error) {
	img, err := first("images", raw)
	if err != nil {
		return types.CatImage{}, err
	}
	url, err := required("url", img.URL)
	if err != nil {
		return types.CatImage{}, err
	}
	width, err := required("width", img.Width)
	if err != nil {
		return types.CatImage{}, err
	}
	height, err := required("height", img.Height)
	if err != nil {
		return types.CatImage{}, err
	}
	return types.CatImage{ImageURL: url, Width: width, Height: height}, nil
}

// Joke keeps setup and punchline.
func Joke(raw model.Joke) (types.Joke, error) {
	setup, err := required("setup", raw.Setup)
	if err != nil {
		return types.Joke{}, err
	}
	punchline, err := required("punchline", raw.Punchline)
	if err != nil {
		return types.Joke{}, err
	}
	return types.Joke{Setup: setup, Punchline: punchline}, nil
}

// Advice maps slip.advice -> advice.
func Advice(raw model.AdviceSlip) (types.Advice, error) {
	if raw.Slip == nil {
		return types.Advice{}, missing("slip")
	}
	advice, err := required("slip.advice", raw.Slip.Advice)
	if err != nil {
		return types.Advice{}, err
	}
	return types.Advice{Advice: advice}, nil
}

// Age maps age -> predicted_age. A null age is passed through.
func Age(raw model.AgePrediction) (types.AgePrediction, error) {
	name, err := required("name", raw.Name)
	if err != nil {
		return types.AgePrediction{}, err
	}
	out := types.AgePrediction{Name: name}
	if raw.Age != nil {
		age := *raw.Age
		out.PredictedAge = &age
	}
	return out, nil
}

// Country takes the first match and its first capital.
func Country(raw []model.Country) (types.CountryDetail, error) {
	c, err := first("countries", raw)
	if err != nil {
		return types.CountryDetail{}, err
	}
	if c.Name == nil {
		return types.CountryDetail{}, missing("name")
	}
	name, err := required("name.common", c.Name.Common)
	if err != nil {
		return types.CountryDetail{}, err
	}
	capital, err := first("capital", c.Capital)
	if err != nil {
		return types.CountryDetail{}, err
	}
	population, err := required("population", c.Population)
	if err != nil {
		return types.CountryDetail{}, err
	}
	flag, err := required("flag", c.Flag)
	if err != nil {
		return types.CountryDetail{}, err
	}
	region, err := required("region", c.Region)
	if err != nil {
		return types.CountryDetail{}, err
	}
	return types.CountryDetail{
		Name:       name,
		Capital:    capital,
		Population: population,
		Flag:       flag,
		Region:     region,
	}, nil
}

// University keeps the name and the primary website (web_pages[0]).
func University(raw model.University) (types.University, error) {
	name, err := required("name", raw.Name)
	if err != nil {
		return types.University{}, err
	}
	website, err := first("web_pages", raw.WebPages)
	if err != nil {
		return types.University{}, err
	}
	return types.University{Name: name, Website: website}, nil
}

// Universities lists every record under the requested country name.
// An empty list yields an empty, non-null array.
func Universities(country string, raw []model.University) (types.CountryUniversities, error) {
	list, err := universityList(raw)
	if err != nil {
		return types.CountryUniversities{}, err
	}
	return types.CountryUniversities{Country: country, Universities: list}, nil
}

// UniversitiesGrouped reads the country from the first record.
func UniversitiesGrouped(raw []model.University) (types.CountryUniversities, error) {
	head, err := first("universities", raw)
	if err != nil {
		return types.CountryUniversities{}, err
	}
	country, err := required("country", head.Country)
	if err != nil {
		return types.CountryUniversities{}, err
	}
	list, err := universityList(raw)
	if err != nil {
		return types.CountryUniversities{}, err
	}
	return types.CountryUniversities{Country: country, Universities: list}, nil
}

func universityList(raw []model.University) ([]types.University, error) {
	list := make([]types.University, 0, len(raw))
	for _, u := range raw {
		item, err := University(u)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, nil
}

// Bored takes the first matching activity.
func Bored(raw []model.Activity) (types.Activity, error) {
	a, err := first("activities", raw)
	if err != nil {
		return types.Activity{}, err
	}
	activity, err := required("activity", a.Activity)
	if err != nil {
		return types.Activity{}, err
	}
	kind, err := required("type", a.Type)
	if err != nil {
		return types.Activity{}, err
	}
	participants, err := required("participants", a.Participants)
	if err != nil {
		return types.Activity{}, err
	}
	return types.Activity{Activity: activity, Type: kind, Participants: participants}, nil
}

// Quote maps q -> quote and a -> author of the first element.
func Quote(raw []model.Quote) (types.Quote, error) {
	q, err := first("quotes", raw)
	if err != nil {
		return types.Quote{}, err
	}
	quote, err := required("q", q.Q)
	if err != nil {
		return types.Quote{}, err
	}
	author, err := required("a", q.A)
	if err != nil {
		return types.Quote{}, err
	}
	return types.Quote{Quote: quote, Author: author}, nil
}

func required[T any](field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, missing(field)
	}
	return *v, nil
}

func first[T any](field string, list []T) (T, error) {
	if len(list) == 0 {
		var zero T
		return zero, &Error{Field: field, Kind: ErrEmptyList}
	}
	return list[0], nil
}

func missing(field string) error {
	return &Error{Field: field, Kind: ErrMissingField}
}
