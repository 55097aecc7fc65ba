package menu

import (
	"errors"
	"fmt"
)

// Reserved keys. ExitKey applies to the root menu, BackKey to every nested one.
const (
	ExitKey = "0"
	BackKey = "m"
)

// reservedKey returns the key that leaves a menu at the given depth.
func reservedKey(depth int) string {
	if depth == 0 {
		return ExitKey
	}
	return BackKey
}

// Validate checks the tree rooted at root: keys must be non-empty, unique
// within their menu (case-insensitive) and distinct from the reserved key
// for that level; entries must be non-nil; the tree must be acyclic.
func Validate(root *Menu) error {
	if root == nil {
		return errors.New("menu: nil root")
	}
	return validate(root, 0, map[*Menu]bool{})
}

// MustValidate panics if Validate fails. Used on the static tree at startup.
func MustValidate(root *Menu) *Menu {
	if err := Validate(root); err != nil {
		panic(err)
	}
	return root
}

func validate(m *Menu, depth int, onPath map[*Menu]bool) error {
	if onPath[m] {
		return fmt.Errorf("menu %q: cycle detected", m.Name)
	}
	onPath[m] = true
	defer delete(onPath, m)

	reserved := reservedKey(depth)
	seen := make(map[string]bool, len(m.Items))
	for _, it := range m.Items {
		key := normalize(it.Key)
		switch {
		case key == "":
			return fmt.Errorf("menu %q: empty key", m.Name)
		case key == reserved:
			return fmt.Errorf("menu %q: key %q collides with reserved key", m.Name, it.Key)
		case seen[key]:
			return fmt.Errorf("menu %q: duplicate key %q", m.Name, it.Key)
		}
		seen[key] = true

		switch e := it.Entry.(type) {
		case *Menu:
			if e == nil {
				return fmt.Errorf("menu %q: key %q has nil sub-menu", m.Name, it.Key)
			}
			if err := validate(e, depth+1, onPath); err != nil {
				return err
			}
		case *Action:
			if e == nil {
				return fmt.Errorf("menu %q: key %q has nil action", m.Name, it.Key)
			}
		default:
			return fmt.Errorf("menu %q: key %q has no entry", m.Name, it.Key)
		}
	}
	return nil
}
