package main

import "github.com/yazilimcilarinmolayeri/pixels-clone/cmd/app"

func main() {
	app.GetApp().LetsGo()
}
