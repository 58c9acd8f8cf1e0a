package forms

type Login struct {
	Username string `validate:"required" label:"Username"`
	Password string `validate:"required" label:"Password"`
}

type Register struct {
	Username string `validate:"required,min=3,max=50" label:"Username"`
	Password string `validate:"required,min=4" label:"Password"`
	Email    string `validate:"omitempty,email,max=100" label:"Email"`
}

// NewUser is the admin "add user" form.
type NewUser struct {
	Username string `validate:"required,min=3,max=50" label:"Username"`
	Password string `validate:"required,min=4" label:"Password"`
	Email    string `validate:"omitempty,email,max=100" label:"Email"`
	IsAdmin  bool
}

type ResetPassword struct {
	NewPassword string `validate:"required,min=4" label:"Password"`
}

// ChangePassword reports a confirmation mismatch before the length rule.
type ChangePassword struct {
	CurrentPassword string `validate:"required" label:"Current password"`
	NewPassword     string `validate:"eqfield=ConfirmPassword,required,min=4" label:"Password" mismatch:"New passwords do not match"`
	ConfirmPassword string `label:"Confirm password"`
}

type Profile struct {
	Username string `validate:"required,min=3,max=50" label:"Username"`
	Email    string `validate:"omitempty,email,max=100" label:"Email"`
}

type Task struct {
	Title       string `validate:"required,max=200" label:"Title"`
	Description string
	Status      string `validate:"required,oneof=pending in_progress completed" label:"Status"`
}

type DemoPOC struct {
	Description string `validate:"required" label:"Description"`
}

type ChatPrompt struct {
	Prompt string `validate:"required" label:"Prompt"`
}
