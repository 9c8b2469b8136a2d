package models

type SetPixelRequestBody struct {
	X int `json:"x"`
	Y int `json:"y"`
	// Color is a 6 character hex value without the leading '#'.
	Color string `json:"color"`
}

type PixelResponse struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}
