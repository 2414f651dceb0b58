package item

import "github.com/arloliu/ringitem/format"

// UserItem is an item with a caller-defined type above format.FirstUserItemCode.
// Its payload is left uninterpreted.
type UserItem struct {
	typ  format.ItemType
	data []byte
}

// TypeID returns the exact user item type identifier.
func (u UserItem) TypeID() uint32 {
	return uint32(u.typ)
}

// Bytes returns the payload bytes.
func (u UserItem) Bytes() []byte {
	return u.data
}
