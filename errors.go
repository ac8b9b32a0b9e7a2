package elheap

import "errors"

// ErrorUndersized heap capacity is too small to hold even a single
// block's header and footer.
var ErrorUndersized = errors.New("elheap.undersized")

// ErrorMapaddress the OS could not place the heap mapping at the
// preferred "mapaddress".
var ErrorMapaddress = errors.New("elheap.mapaddress")
