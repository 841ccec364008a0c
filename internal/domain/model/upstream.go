// Package model contains the raw payload shapes returned by upstream APIs.
//
// Every field the gateway surfaces is a pointer so that a missing key can be
// told apart from a zero value.
package model

// DogImage is the dog.ceo random image payload.
type DogImage struct {
	Message *string `json:"message"`
	Status  string  `json:"status"`
}

// CatImage is one element of thecatapi.com image search results.
type CatImage struct {
	ID     string  `json:"id"`
	URL    *string `json:"url"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

// Joke is the official-joke-api random joke payload.
type Joke struct {
	ID        int     `json:"id"`
	Type      string  `json:"type"`
	Setup     *string `json:"setup"`
	Punchline *string `json:"punchline"`
}

// AdviceSlip is the adviceslip.com payload.
type AdviceSlip struct {
	Slip *Slip `json:"slip"`
}

// Slip is the body of an advice slip.
type Slip struct {
	ID     int     `json:"id"`
	Advice *string `json:"advice"`
}

// AgePrediction is the agify.io payload. Age is null when the name is unknown.
type AgePrediction struct {
	Name  *string `json:"name"`
	Age   *int    `json:"age"`
	Count int     `json:"count"`
}

// Country is one element of the restcountries.com v3.1 name search.
type Country struct {
	Name       *CountryName `json:"name"`
	Capital    []string     `json:"capital"`
	Population *int64       `json:"population"`
	Flag       *string      `json:"flag"`
	Region     *string      `json:"region"`
}

// CountryName holds the names restcountries.com reports for a country.
type CountryName struct {
	Common   *string `json:"common"`
	Official string  `json:"official"`
}

// University is one element of the hipolabs universities search.
type University struct {
	Name         *string  `json:"name"`
	Country      *string  `json:"country"`
	AlphaTwoCode string   `json:"alpha_two_code"`
	Domains      []string `json:"domains"`
	WebPages     []string `json:"web_pages"`
}

// Activity is one element of the bored-api filter results.
type Activity struct {
	Key          string  `json:"key"`
	Activity     *string `json:"activity"`
	Type         *string `json:"type"`
	Participants *int    `json:"participants"`
}

// Quote is one element of the zenquotes.io random payload.
type Quote struct {
	Q *string `json:"q"`
	A *string `json:"a"`
	H string  `json:"h"`
}
