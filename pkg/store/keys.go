package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// kind describes how one record type is laid out in the key-value store.
// Records live in hashes keyed "<counter>_<n>" and the keys of live records
// are kept in the index set.
type kind struct {
	name    string
	counter string
	index   string
}

var (
	companyKind  = kind{name: "company", counter: "comp_id", index: "comp_ids"}
	employeeKind = kind{name: "employee", counter: "emp_id", index: "emp_ids"}
	bookKind     = kind{name: "book", counter: "book_id", index: "book_ids"}
	adminKind    = kind{name: "admin", counter: "admin_id", index: "admin_ids"}
)

// uniqueness sets; emails is shared by companies and employees
const (
	companyNamesKey = "comp"
	bookNamesKey    = "book_names"
	emailsKey       = "emails"
)

func (k kind) key(id int64) string {
	return k.counter + "_" + strconv.FormatInt(id, 10)
}

func (k kind) parseKey(key string) (int64, error) {
	raw, ok := strings.CutPrefix(key, k.counter+"_")
	if !ok {
		return 0, fmt.Errorf("key %q is not a %s key", key, k.name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("key %q is not a %s key", key, k.name)
	}
	return id, nil
}

// readingListKey is the set of book keys on one of an employee's lists.
func readingListKey(employeeID int64, list types.ListName) string {
	return employeeKind.key(employeeID) + ":books:" + string(list)
}

func readingListKeys(employeeID int64) []string {
	keys := make([]string, 0, len(types.ListNames))
	for _, list := range types.ListNames {
		keys = append(keys, readingListKey(employeeID, list))
	}
	return keys
}
