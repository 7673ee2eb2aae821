package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ClickerMonkey/bitcol"
)

type UserAdmin struct {
	ID   int
	Name string
	Role int `bitwise:"member:1,manager:2,admin:3,finance:4,marketing:5"`
}

var locale = []byte(`
en:
  bitwise_column:
    user_admin:
      role:
        member: Staff Member
  activerecord:
    attributes:
      user_admin:
        role/admin: Administrator
`)

func main() {
	catalog, err := bitcol.NewCatalog("en")
	if err != nil {
		panic(err)
	}
	if err := catalog.Add(locale, "yaml"); err != nil {
		panic(err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	users := bitcol.MustDescribe(UserAdmin{}, bitcol.NewOptions().
		WithTranslator(catalog.Translator("en")).
		WithLogger(logger))

	user := UserAdmin{ID: 1, Name: "Ada", Role: 8}
	role, err := users.Bind(&user, "role")
	if err != nil {
		panic(err)
	}

	role.Append("member", "marketing", "admin")
	role.Append("not_a_role")
	fmt.Printf("role=%d flags=%v text=%v\n", user.Role, role.Flags(), role.Text())

	selects, err := role.Select(bitcol.Filter{Except: []string{"finance"}})
	if err != nil {
		panic(err)
	}
	for _, option := range selects {
		fmt.Printf("  [%v] %s (%s)\n", option.Selected, option.Label, option.Value)
	}

	data, err := users.Marshal(user)
	if err != nil {
		panic(err)
	}
	result, _ := json.Marshal(data)
	fmt.Printf("\nFlags: %s\n", result)
}
