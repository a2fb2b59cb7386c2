package notify

import "html/template"

// data fed to both email templates
type emailData struct {
	FullName         string
	Email            string
	Phone            string
	TreatmentType    string
	PreferredDate    string
	PreferredTime    string
	SpecialRequests  string
	BookingReference string
	ContactPhone     string
	ContactEmail     string
}

var customerTemplate = template.Must(template.New("customer").Parse(`<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; background: linear-gradient(135deg, #10b981, #059669); padding: 40px 20px; border-radius: 20px;">
  <div style="background: white; padding: 40px; border-radius: 15px;">
    <div style="text-align: center; margin-bottom: 30px;">
      <h1 style="color: #059669; font-size: 32px; margin: 0;">🌿 Niramaya</h1>
      <p style="color: #6b7280; font-size: 16px; margin: 5px 0 0 0;">Holistic Wellness Center</p>
    </div>

    <h2 style="color: #1f2937; font-size: 24px; text-align: center;">Your Appointment is Confirmed!</h2>

    <div style="background: #f0fdf4; padding: 25px; border-radius: 12px; margin-bottom: 25px; border-left: 4px solid #10b981;">
      <h3 style="color: #059669; margin-top: 0;">Appointment Details</h3>
      <p style="margin: 8px 0;"><strong>Name:</strong> {{.FullName}}</p>
      <p style="margin: 8px 0;"><strong>Treatment:</strong> {{.TreatmentType}}</p>
      <p style="margin: 8px 0;"><strong>Date:</strong> {{.PreferredDate}}</p>
      <p style="margin: 8px 0;"><strong>Time:</strong> {{.PreferredTime}}</p>
      <p style="margin: 8px 0;"><strong>Phone:</strong> {{.Phone}}</p>
      <p style="margin: 8px 0;"><strong>Booking Reference:</strong> <span style="background: #10b981; color: white; padding: 4px 8px; border-radius: 6px; font-weight: bold;">{{.BookingReference}}</span></p>
      {{if .SpecialRequests}}<p style="margin: 8px 0;"><strong>Special Requests:</strong> {{.SpecialRequests}}</p>{{end}}
    </div>

    <div style="background: #fef3c7; padding: 20px; border-radius: 10px; margin-bottom: 25px; border-left: 4px solid #f59e0b;">
      <h4 style="color: #92400e; margin-top: 0;">📋 What to Expect</h4>
      <ul style="color: #78350f; margin: 0; padding-left: 20px;">
        <li>Please arrive 15 minutes early for check-in</li>
        <li>Bring comfortable clothing</li>
        <li>Avoid heavy meals 2 hours before your appointment</li>
        <li>Stay hydrated throughout the day</li>
      </ul>
    </div>

    <div style="text-align: center; margin-top: 30px;">
      <p style="color: #6b7280; font-size: 14px; margin-bottom: 20px;">Need to reschedule or have questions?</p>
      <p style="color: #6b7280; font-size: 14px;">📞 {{.ContactPhone}} | 📧 {{.ContactEmail}}</p>
    </div>

    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
      <p style="color: #9ca3af; font-size: 12px; margin: 0;">
        Thank you for choosing Niramaya Wellness<br>
        Your journey to wellness begins here 🙏
      </p>
    </div>
  </div>
</div>`))

var operatorTemplate = template.Must(template.New("operator").Parse(`<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; background: #1f2937; padding: 40px 20px; border-radius: 20px;">
  <div style="background: white; padding: 40px; border-radius: 15px;">
    <div style="text-align: center; margin-bottom: 30px;">
      <h1 style="color: #dc2626; font-size: 28px; margin: 0;">🔔 New Appointment Alert</h1>
      <p style="color: #6b7280; font-size: 16px;">Niramaya Wellness Center</p>
    </div>

    <div style="background: #fef2f2; padding: 25px; border-radius: 12px; margin-bottom: 25px; border-left: 4px solid #dc2626;">
      <h3 style="color: #dc2626; margin-top: 0;">Customer Details</h3>
      <p><strong>Name:</strong> {{.FullName}}</p>
      <p><strong>Email:</strong> {{.Email}}</p>
      <p><strong>Phone:</strong> {{.Phone}}</p>
      <p><strong>Treatment:</strong> {{.TreatmentType}}</p>
      <p><strong>Date:</strong> {{.PreferredDate}}</p>
      <p><strong>Time:</strong> {{.PreferredTime}}</p>
      <p><strong>Booking Reference:</strong> <strong>{{.BookingReference}}</strong></p>
      {{if .SpecialRequests}}<p><strong>Special Requests:</strong> {{.SpecialRequests}}</p>{{end}}
    </div>

    <div style="text-align: center; background: #f3f4f6; padding: 20px; border-radius: 10px;">
      <p style="margin: 0; color: #374151; font-weight: 600;">Please confirm this appointment in your system</p>
    </div>
  </div>
</div>`))
