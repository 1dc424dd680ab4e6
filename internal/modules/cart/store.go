package cart

import "github.com/gin-gonic/gin"

// Store abstracts where the cart lives so handlers depend on a contract,
// not on ambient cookie access. The production Store is the signed-cookie
// implementation in internal/http/cartcookie; tests use MemoryStore.
//
// Load never fails hard: a missing or corrupt stored value comes back as an
// empty cart so a damaged blob degrades instead of crashing the page.
type Store interface {
	Load(c *gin.Context) Cart
	Save(c *gin.Context, crt Cart)
	Clear(c *gin.Context)
}

// MemoryStore is an in-process Store for tests. It ignores the request and
// keeps a single cart.
type MemoryStore struct {
	Cart    Cart
	Cleared bool
}

func (m *MemoryStore) Load(*gin.Context) Cart { return m.Cart }

func (m *MemoryStore) Save(_ *gin.Context, crt Cart) {
	m.Cart = crt
	m.Cleared = false
}

func (m *MemoryStore) Clear(*gin.Context) {
	m.Cart = Cart{}
	m.Cleared = true
}
