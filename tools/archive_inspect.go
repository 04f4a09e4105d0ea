package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"tourney/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Dumps the archived game records of a badger database as a table.
func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	prefix := flag.String("prefix", "result:", "Prefix to scan")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db path")
	}
	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Room", "Finished", "Winner", "Columns", "Scores"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var record repositories.GameRecord
				if err := json.Unmarshal(v, &record); err != nil {
					// Log the broken record and keep scanning instead of
					// stopping the whole dump.
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				winner := "draw"
				if record.Winner != nil {
					winner = *record.Winner
				}
				scores := lo.MapToSlice(record.Scores, func(player string, parts []int) string {
					return fmt.Sprintf("%s=%v", player, parts)
				})
				table.Append([]string{
					string(item.Key()),
					record.Room,
					record.FinishedAt.Format("2006-01-02 15:04:05"),
					winner,
					strings.Join(record.Columns, ", "),
					strings.Join(scores, " "),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
}
