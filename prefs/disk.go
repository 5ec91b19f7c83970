// This file is part of MyMig.
//
// MyMig is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MyMig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MyMig.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mymig/mymig/curated"
)

// WarningBoilerPlate is inserted at the beginning of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Sentinal error patterns.
const (
	DiskError    = "prefs: %v"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// Disk represents preference values as stored on disk. Many Disk instances
// can share a single file. Save() will only alter the entries that belong to
// the instance being saved.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// DefaultPrefsFile returns the path to the preferences file in the user's
// configuration directory. The directory is created if necessary.
func DefaultPrefsFile() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf(DiskError, err)
	}
	pth := filepath.Join(cfg, "mymig")
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", curated.Errorf(DiskError, err)
	}
	return filepath.Join(pth, "preferences"), nil
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file.
//
// If a value with the key has been pushed onto the command line stack then
// the value is set from there.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}

// Reset all preference values to their default.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file belonging to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		entries[k] = v.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, entries[k])
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and
// saveOnFirstUse is true then the current values are saved.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	if _, err := os.Stat(dsk.path); os.IsNotExist(err) {
		if saveOnFirstUse {
			return dsk.Save()
		}
		return nil
	}

	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			// command line values take priority over values on disk
			if ok, cl := GetCommandLinePref(k); ok {
				v = fmt.Sprintf("%v", cl)
			}
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}

// read the preferences file into a map of strings. a missing file is not an
// error
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate warning
	if !scanner.Scan() {
		return entries, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, "not a valid preferences file")
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return entries, nil
}
