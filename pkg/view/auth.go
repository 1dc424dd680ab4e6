package view

type LoginForm struct {
	Email string
}

type LoginPage struct {
	Layout
	Form     LoginForm
	Errors   map[string]string
	AuthErr  string
	ReturnTo string
}

type SignupForm struct {
	Name  string
	Email string
}

type SignupPage struct {
	Layout
	Form     SignupForm
	Errors   map[string]string
	AuthErr  string
	ReturnTo string
}
