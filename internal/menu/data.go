package menu

import _ "embed"

//go:embed menu.json
var menuData []byte
