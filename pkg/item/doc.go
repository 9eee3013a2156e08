// Package item implements the itemd domain core: the Item model, the Store
// capability set with in-memory and Redis-backed implementations, payload
// validation, and the HTTP handler that maps store results onto response
// codes.
//
// # Store semantics
//
// Stores assign ids from a monotonically increasing counter; ids are never
// reused after deletion and never change on update. Every fresh store holds
// three seed items (ids 1-3) and allocates id 4 first. Reset restores that
// state and exists solely for test isolation.
//
// Not-found is signaled with the ErrNotFound sentinel rather than a fault,
// so the handler can keep the 404-vs-500 distinction intact.
//
// # HTTP contract
//
//	GET    /api/items        200 [Item]
//	GET    /api/items/{id}   200 Item | 400 | 404
//	POST   /api/items        201 Item | 400
//	PUT    /api/items/{id}   200 Item | 400 | 404
//	DELETE /api/items/{id}   200 {"message": ...} | 400 | 404
//
// Client errors carry {"error": message}; unexpected store faults carry
// {"error": "Internal server error", "message": details}.
package item
