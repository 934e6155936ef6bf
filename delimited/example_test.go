package delimited_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvtab/aggregate"
	"github.com/katalvlaran/lvtab/delimited"
	"github.com/katalvlaran/lvtab/render"
)

func ExampleRead() {
	const in = `name;position;age;salary
Ivan;engineer;34;1500
Olga;;29;2100
Petr;manager;41
`
	tb, err := delimited.Read(strings.NewReader(in), delimited.WithDelimiter(';'))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = render.Write(os.Stdout, tb)

	salary, _ := aggregate.ParseRange("D2:D4")
	mean, _ := tb.Mean(salary)
	fmt.Println("mean salary:", mean)
	// Output:
	// ----------------------------------
	// | name | position | age | salary |
	// ----------------------------------
	// | Ivan | engineer | 34  | 1500   |
	// ----------------------------------
	// | Olga | None     | 29  | 2100   |
	// ----------------------------------
	// | Petr | manager  | 41  | None   |
	// ----------------------------------
	// mean salary: 1800
}
