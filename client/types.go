package client

// Option is an id/name pair for select boxes.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c Category) GetID() int64    { return c.ID }
func (c Category) GetName() string { return c.Name }

type Scope struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Backgrounds []string `json:"backgrounds"`
	CategoryID  int64    `json:"categoryId"`
	Category    *Option  `json:"category"`
}

func (s Scope) GetID() int64    { return s.ID }
func (s Scope) GetName() string { return s.Name }

type Costume struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Picture     string  `json:"picture"`
	Model       string  `json:"model"`
	ScopeID     int64   `json:"scopeId"`
	Scope       *Option `json:"scope"`
}

func (c Costume) GetID() int64    { return c.ID }
func (c Costume) GetName() string { return c.Name }

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

func (u User) GetID() int64 { return u.ID }

// GetName identifies a user in confirmations and notifications by email,
// the only field guaranteed non-empty.
func (u User) GetName() string { return u.Email }

func Categories(c *Client) Resource[Category] {
	return Resource[Category]{Client: c, Path: "/api/categories", Label: "phân loại"}
}

func Scopes(c *Client) Resource[Scope] {
	return Resource[Scope]{Client: c, Path: "/api/scopes", Label: "đối tượng"}
}

func Costumes(c *Client) Resource[Costume] {
	return Resource[Costume]{Client: c, Path: "/api/costumes", Label: "đồng phục"}
}

func Users(c *Client) Resource[User] {
	return Resource[User]{Client: c, Path: "/api/users", Label: "người dùng"}
}
