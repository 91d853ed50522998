package email

import "fmt"

// PhonePlaceholder is rendered in place of a missing phone number.
const PhonePlaceholder = "No proporcionado"

// WelcomeSubject is the subject line of the welcome email.
const WelcomeSubject = "¡Bienvenido a SoftwarePar!"

// ContactConfirmationSubject is the subject line of the contact acknowledgement.
const ContactConfirmationSubject = "Confirmación de tu consulta - SoftwarePar"

// ContactAdminSubject returns the subject line of the internal contact notice.
func ContactAdminSubject(subject, fullName string) string {
	return fmt.Sprintf("Nueva consulta: %s - %s", subject, fullName)
}

// PartnerCommissionSubject returns the subject line of the commission notice.
// The amount is the caller-supplied string, interpolated verbatim.
func PartnerCommissionSubject(amount string) string {
	return fmt.Sprintf("¡Nueva comisión de $%s generada!", amount)
}

// WelcomeHTML returns the HTML body for the welcome email.
func WelcomeHTML(name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Bienvenido a SoftwarePar</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
<div style="background: linear-gradient(135deg, #1e40af 0%%, #1e3a8a 100%%); color: white; padding: 30px; border-radius: 10px; text-align: center;">
  <h1 style="margin: 0; font-size: 28px;">¡Bienvenido a SoftwarePar!</h1>
  <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Tu cuenta ha sido creada exitosamente</p>
</div>
<div style="padding: 30px 0;">
  <h2 style="color: #1e40af;">Hola %s,</h2>
  <p>Gracias por unirte a SoftwarePar. Estamos emocionados de tenerte en nuestra plataforma.</p>
  <p>Con tu cuenta puedes:</p>
  <ul style="color: #666;">
    <li>Solicitar cotizaciones para tus proyectos</li>
    <li>Hacer seguimiento del progreso de tus desarrollos</li>
    <li>Acceder a soporte técnico especializado</li>
    <li>Gestionar tus facturas y pagos</li>
  </ul>
  <div style="text-align: center; margin: 30px 0;">
    <a href="https://softwarepar.lat" style="background: #1e40af; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Acceder a mi Dashboard</a>
  </div>
  <p>Si tienes alguna pregunta, no dudes en contactarnos.</p>
  <p style="margin-top: 30px;">
    Saludos,<br>
    <strong>El equipo de SoftwarePar</strong>
  </p>
</div>
<div style="border-top: 1px solid #eee; padding-top: 20px; text-align: center; color: #666; font-size: 14px;">
  <p>SoftwarePar - Desarrollo de Software Profesional</p>
  <p>Itapúa, Carlos Antonio López, Paraguay | softwarepar.lat@gmail.com</p>
</div>
</body>
</html>`, name)
}

// WelcomeText returns the plain-text body for the welcome email.
func WelcomeText(name string) string {
	return fmt.Sprintf(`¡Bienvenido a SoftwarePar!

Hola %s,

Gracias por unirte a SoftwarePar. Estamos emocionados de tenerte en nuestra plataforma.

Con tu cuenta puedes:
- Solicitar cotizaciones para tus proyectos
- Hacer seguimiento del progreso de tus desarrollos
- Acceder a soporte técnico especializado
- Gestionar tus facturas y pagos

Accede a tu dashboard: https://softwarepar.lat

Saludos,
El equipo de SoftwarePar`, name)
}

// ContactAdminHTML returns the HTML body for the internal contact notice.
// An empty phone renders the fixed placeholder, never empty text.
func ContactAdminHTML(fullName, emailAddr, phone, subject, message string) string {
	if phone == "" {
		phone = PhonePlaceholder
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Nueva Consulta - SoftwarePar</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
<div style="background: #1e40af; color: white; padding: 20px; border-radius: 10px; text-align: center;">
  <h1 style="margin: 0;">Nueva Consulta Recibida</h1>
</div>
<div style="padding: 20px 0;">
  <h2>Detalles del Contacto:</h2>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr>
      <td style="padding: 10px; border-bottom: 1px solid #eee; font-weight: bold;">Nombre:</td>
      <td style="padding: 10px; border-bottom: 1px solid #eee;">%s</td>
    </tr>
    <tr>
      <td style="padding: 10px; border-bottom: 1px solid #eee; font-weight: bold;">Email:</td>
      <td style="padding: 10px; border-bottom: 1px solid #eee;">%s</td>
    </tr>
    <tr>
      <td style="padding: 10px; border-bottom: 1px solid #eee; font-weight: bold;">Teléfono:</td>
      <td style="padding: 10px; border-bottom: 1px solid #eee;">%s</td>
    </tr>
    <tr>
      <td style="padding: 10px; border-bottom: 1px solid #eee; font-weight: bold;">Asunto:</td>
      <td style="padding: 10px; border-bottom: 1px solid #eee;">%s</td>
    </tr>
  </table>
  <h3>Mensaje:</h3>
  <div style="background: #f5f5f5; padding: 15px; border-radius: 5px; border-left: 4px solid #1e40af;">
    %s
  </div>
  <div style="margin-top: 20px; padding: 15px; background: #e0f2fe; border-radius: 5px;">
    <p style="margin: 0; font-weight: bold; color: #0369a1;">Acción Requerida:</p>
    <p style="margin: 5px 0 0 0; color: #0369a1;">El cliente será redirigido a WhatsApp con esta información. Responde rápidamente para una mejor experiencia.</p>
  </div>
</div>
</body>
</html>`, fullName, emailAddr, phone, subject, message)
}

// ContactAdminText returns the plain-text body for the internal contact notice.
func ContactAdminText(fullName, emailAddr, phone, subject, message string) string {
	if phone == "" {
		phone = PhonePlaceholder
	}
	return fmt.Sprintf(`Nueva Consulta Recibida

Nombre: %s
Email: %s
Teléfono: %s
Asunto: %s

Mensaje:
%s`, fullName, emailAddr, phone, subject, message)
}

// ContactConfirmationHTML returns the HTML body for the client acknowledgement.
func ContactConfirmationHTML(clientName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Confirmación de Consulta - SoftwarePar</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
<div style="background: linear-gradient(135deg, #1e40af 0%%, #1e3a8a 100%%); color: white; padding: 30px; border-radius: 10px; text-align: center;">
  <h1 style="margin: 0; font-size: 28px;">¡Gracias por contactarnos!</h1>
  <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Hemos recibido tu consulta exitosamente</p>
</div>
<div style="padding: 30px 0;">
  <h2 style="color: #1e40af;">Hola %s,</h2>
  <p>Gracias por contactar a SoftwarePar. Hemos recibido tu consulta y nuestro equipo la está revisando.</p>
  <div style="background: #f0fdf4; border: 1px solid #bbf7d0; border-radius: 8px; padding: 20px; margin: 20px 0;">
    <h3 style="margin: 0 0 10px 0; color: #059669;">¿Qué sigue ahora?</h3>
    <ul style="margin: 10px 0; padding-left: 20px; color: #374151;">
      <li>Revisaremos tu consulta en detalle</li>
      <li>Te contactaremos en las próximas 24 horas</li>
      <li>Prepararemos una propuesta personalizada</li>
      <li>Coordinaremos una reunión para discutir tu proyecto</li>
    </ul>
  </div>
  <div style="background: #eff6ff; border: 1px solid #bfdbfe; border-radius: 8px; padding: 20px; margin: 20px 0;">
    <h3 style="margin: 0 0 10px 0; color: #1e40af;">¿Necesitas respuesta inmediata?</h3>
    <p style="margin: 5px 0;">También puedes contactarnos directamente por WhatsApp:</p>
    <div style="text-align: center; margin: 15px 0;">
      <a href="https://wa.me/595985990046?text=Hola,%%20he%%20realizado%%20una%%20consulta%%20y%%20enviado%%20los%%20detalles%%20con%%20el%%20formulario.%%20Me%%20gustar%%C3%%ADa%%20obtener%%20m%%C3%%A1s%%20informaci%%C3%%B3n."
         style="background: #25d366; color: white; padding: 12px 25px; text-decoration: none; border-radius: 25px; display: inline-block; font-weight: bold;">
        Contactar por WhatsApp
      </a>
    </div>
  </div>
  <p style="margin-top: 30px;">
    Saludos cordiales,<br>
    <strong>El equipo de SoftwarePar</strong>
  </p>
</div>
<div style="border-top: 1px solid #eee; padding-top: 20px; text-align: center; color: #666; font-size: 14px;">
  <p>SoftwarePar - Desarrollo de Software Profesional</p>
  <p>Itapúa, Carlos Antonio López, Paraguay</p>
  <p>softwarepar.lat@gmail.com | +595 985 990 046</p>
</div>
</body>
</html>`, clientName)
}

// ContactConfirmationText returns the plain-text body for the acknowledgement.
func ContactConfirmationText(clientName string) string {
	return fmt.Sprintf(`¡Gracias por contactarnos!

Hola %s,

Gracias por contactar a SoftwarePar. Hemos recibido tu consulta y nuestro equipo la está revisando.

¿Qué sigue ahora?
- Revisaremos tu consulta en detalle
- Te contactaremos en las próximas 24 horas
- Prepararemos una propuesta personalizada
- Coordinaremos una reunión para discutir tu proyecto

¿Necesitas respuesta inmediata? Escríbenos por WhatsApp: +595 985 990 046

Saludos cordiales,
El equipo de SoftwarePar`, clientName)
}

// PartnerCommissionHTML returns the HTML body for the commission notice.
func PartnerCommissionHTML(partnerName, amount, projectName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Nueva Comisión - SoftwarePar</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
<div style="background: linear-gradient(135deg, #059669 0%%, #047857 100%%); color: white; padding: 30px; border-radius: 10px; text-align: center;">
  <h1 style="margin: 0; font-size: 28px;">¡Nueva Comisión Generada!</h1>
  <p style="margin: 10px 0 0 0; font-size: 18px; opacity: 0.9;">$%s</p>
</div>
<div style="padding: 30px 0;">
  <h2 style="color: #059669;">¡Felicitaciones %s!</h2>
  <p>Has generado una nueva comisión por la venta del proyecto <strong>"%s"</strong>.</p>
  <div style="background: #f0fdf4; border: 1px solid #bbf7d0; border-radius: 8px; padding: 20px; margin: 20px 0;">
    <h3 style="margin: 0 0 10px 0; color: #059669;">Detalles de la comisión:</h3>
    <p style="margin: 5px 0;"><strong>Proyecto:</strong> %s</p>
    <p style="margin: 5px 0;"><strong>Comisión:</strong> $%s</p>
    <p style="margin: 5px 0;"><strong>Estado:</strong> Procesada</p>
  </div>
  <div style="text-align: center; margin: 30px 0;">
    <a href="https://softwarepar.lat" style="background: #059669; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Ver Dashboard</a>
  </div>
  <p>¡Sigue refiriendo clientes y genera más ingresos!</p>
  <p style="margin-top: 30px;">
    Saludos,<br>
    <strong>El equipo de SoftwarePar</strong>
  </p>
</div>
</body>
</html>`, amount, partnerName, projectName, projectName, amount)
}

// PartnerCommissionText returns the plain-text body for the commission notice.
func PartnerCommissionText(partnerName, amount, projectName string) string {
	return fmt.Sprintf(`¡Nueva Comisión Generada!

¡Felicitaciones %s!

Has generado una nueva comisión por la venta del proyecto "%s".

Proyecto: %s
Comisión: $%s
Estado: Procesada

Ver dashboard: https://softwarepar.lat

¡Sigue refiriendo clientes y genera más ingresos!

Saludos,
El equipo de SoftwarePar`, partnerName, projectName, projectName, amount)
}
