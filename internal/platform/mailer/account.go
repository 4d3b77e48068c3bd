package mailer

import "fmt"

// WelcomeMessage composes the signup notification for a new user.
func WelcomeMessage(name string) (subject, body string) {
	subject = "Thanks for joining in!"
	body = fmt.Sprintf("Welcome to the app, %s. let me know how you get along with the app.", name)
	return subject, body
}

// CancellationMessage composes the farewell notification sent on account deletion.
func CancellationMessage(name string) (subject, body string) {
	subject = "Sorry to see you go"
	body = fmt.Sprintf("Goodbye, %s. I hope to see you back sometime soon", name)
	return subject, body
}
