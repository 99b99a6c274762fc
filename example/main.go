package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/htable"
)

func main() {
	log.SetLevel(log.DebugLevel)

	table, err := htable.NewWithOptions[int](htable.WithLogger(log.StandardLogger()))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer table.Close()

	table.Insert("a", 10)
	table.Insert("b", 11)
	table.Insert("c", 12)

	fmt.Println(*table.Find("a"))
	fmt.Println(*table.Find("b"))
	fmt.Println(*table.Find("c"))

	// Grow past the load factor so the resize shows up in the log
	for i := 0; i < 20; i++ {
		table.Insert(fmt.Sprintf("key-%d", i), i*100)
	}

	for i := 0; i < 25; i += 4 {
		key := fmt.Sprintf("key-%d", i)
		if v, found := table.Get(key); found {
			fmt.Printf("%s => %d\n", key, v)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	table.Erase("b")
	if table.Find("b") == nil {
		fmt.Println("b erased")
	}

	s := table.Stats()
	log.WithFields(log.Fields{
		"entries":    s.Len,
		"capacity":   s.Cap,
		"tombstones": s.Tombstones,
		"resizes":    s.Resizes,
	}).Info("Example completed successfully")
}
