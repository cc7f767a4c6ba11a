package notifier

import "fmt"

// HTML wrapper shared by all outbound mail.
func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px; }
			.container { max-width: 600px; margin: 0 auto; background: #FFFFFF; border-radius: 10px; padding: 30px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
			.header { text-align: center; margin-bottom: 30px; }
			.header h1 { color: #007bff; margin: 0; }
			.header p { color: #666; margin: 5px 0; }
			.content { padding: 20px; background: #f8f9fa; border-radius: 8px; }
			.otp { text-align: center; color: #007bff; font-size: 32px; letter-spacing: 8px; margin: 20px 0; font-weight: bold; }
			.footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>KALPANA MEDCARE</h1>
				<p>Hospital Management System</p>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				<p>If you didn't request this, please ignore this email.</p>
				<p>&copy; 2026 KALPANA MEDCARE. All rights reserved.</p>
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// RegistrationOTPEmail builds the signup verification message.
func RegistrationOTPEmail(name, otp string) (subject, body string) {
	subject = "KALPANA MEDCARE - OTP Verification"
	content := fmt.Sprintf(`
		<p>Hello %s!</p>
		<p>Your OTP for registration verification is:</p>
		<div class="otp">%s</div>
		<p>This OTP will expire in 10 minutes. Please do not share this code with anyone.</p>
	`, name, otp)
	return subject, emailTemplate("Verify Your Email", content)
}

// ResetOTPEmail builds the password-reset message.
func ResetOTPEmail(name, otp string) (subject, body string) {
	subject = "KALPANA MEDCARE - Password Reset Code"
	content := fmt.Sprintf(`
		<p>Hello %s!</p>
		<p>You requested to reset your password. Use the code below to proceed:</p>
		<div class="otp">%s</div>
		<p>This code will expire in 10 minutes. If you didn't request this reset, please ignore this email.</p>
	`, name, otp)
	return subject, emailTemplate("Password Reset", content)
}
