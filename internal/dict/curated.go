package dict

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed words.txt
var curatedWords string

// Curated returns the built-in English dictionary. The list is parsed once.
var Curated = sync.OnceValue(func() *MapDictionary {
	d, err := LoadWordList(strings.NewReader(curatedWords))
	if err != nil {
		// встроенный список проверяется тестами
		panic("dict: curated word list: " + err.Error())
	}
	return d
})
