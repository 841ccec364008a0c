// Package types contains the normalized response shapes served by the gateway.
package types

// DogImage is served by /dog/.
type DogImage struct {
	ImageURL string `json:"image_url"`
}

// CatImage is served by /cat/.
type CatImage struct {
	ImageURL string `json:"image_url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Joke is served by /joke/.
type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// Advice is served by /advice/.
type Advice struct {
	Advice string `json:"advice"`
}

// AgePrediction is served by /age/. PredictedAge is null when unknown.
type AgePrediction struct {
	Name         string `json:"name"`
	PredictedAge *int   `json:"predicted_age"`
}

// CountryDetail is served by /country/.
type CountryDetail struct {
	Name       string `json:"name"`
	Capital    string `json:"capital"`
	Population int64  `json:"population"`
	Flag       string `json:"flag"`
	Region     string `json:"region"`
}

// University is one entry of a university listing.
type University struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// CountryUniversities is served by /universities/ and /universities/pro/.
type CountryUniversities struct {
	Country      string       `json:"country"`
	Universities []University `json:"universities"`
}

// Activity is served by /bored/.
type Activity struct {
	Activity     string `json:"activity"`
	Type         string `json:"type"`
	Participants int    `json:"participants"`
}

// Quote is served by /quotes/.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}
