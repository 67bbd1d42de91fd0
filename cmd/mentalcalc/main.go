// mentalcalc — офлайн-тренажёр устного умножения: выбор метода, учебные материалы, задачи.
// Движок работает в процессе, без БД, кэша и брокера.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
