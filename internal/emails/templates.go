package emails

import "html/template"

// The document bodies follow the storefront's original notification layout:
// Spanish labels, RD$ amounts, green Air Store branding.

var operatorTemplate = template.Must(template.New("operator_notification").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Nueva Orden Air Store</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 800px; margin: 0 auto; padding: 20px;">
  <div style="background: #10b981; color: white; padding: 24px; border-radius: 10px; text-align: center;">
    <h1 style="margin: 0;">Nueva Orden Recibida</h1>
    <p style="margin: 8px 0 0 0;">Air Store</p>
  </div>

  <div style="background: #f9fafb; padding: 16px; border-radius: 10px; margin-top: 16px;">
    <h2 style="color: #10b981; margin-top: 0;">Detalles de la Orden</h2>
    <p><strong>Número de Orden:</strong> {{.OrderNumber}}</p>
    <p><strong>Fecha:</strong> {{.Date}}</p>
    <p><strong>Estado:</strong> <span style="background: #10b981; color: white; padding: 3px 8px; border-radius: 4px; font-size: 12px;">CONFIRMADA</span></p>
  </div>

  <div style="background: #f9fafb; padding: 16px; border-radius: 10px; margin-top: 16px;">
    <h2 style="color: #10b981; margin-top: 0;">Información del Cliente</h2>
    <p><strong>Nombre:</strong> {{.CustomerName}}</p>
    <p><strong>Email:</strong> {{.CustomerEmail}}</p>
    <p><strong>Teléfono:</strong> {{.CustomerPhone}}</p>
    <p><strong>Documento:</strong> {{.DocumentLine}}</p>
{{- if .ShowContactLine}}
    <p><strong>Contacto Adicional:</strong> {{.ContactLabel}}: {{.ContactValue}}</p>
{{- end}}
  </div>

  <div style="background: #f9fafb; padding: 16px; border-radius: 10px; margin-top: 16px;">
    <h2 style="color: #10b981; margin-top: 0;">Dirección de Envío</h2>
    <p><strong>Provincia:</strong> {{.Province}}</p>
    <p><strong>Ciudad:</strong> {{.City}}</p>
    <p><strong>Dirección:</strong> {{.Address}}</p>
{{- if .ShowPostalCode}}
    <p><strong>Código Postal:</strong> {{.PostalCode}}</p>
{{- end}}
{{- if .ShowReferences}}
    <p><strong>Referencias:</strong> {{.References}}</p>
{{- end}}
  </div>

  <div style="background: #f9fafb; padding: 16px; border-radius: 10px; margin-top: 16px;">
    <h2 style="color: #10b981; margin-top: 0;">Productos Ordenados</h2>
    <table style="width: 100%; border-collapse: collapse; background: white;">
      <thead>
        <tr style="background: #10b981; color: white;">
          <th style="padding: 10px; text-align: left;">Imagen</th>
          <th style="padding: 10px; text-align: left;">Producto</th>
          <th style="padding: 10px; text-align: center;">Cantidad</th>
          <th style="padding: 10px; text-align: right;">Precio Unit.</th>
          <th style="padding: 10px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>
{{- range .Items}}
        <tr style="border-bottom: 1px solid #e5e7eb;">
          <td style="padding: 10px;"><img src="{{.Image}}" alt="{{.Name}}" style="width: 60px; height: 60px; object-fit: cover;"></td>
          <td style="padding: 10px;"><strong>{{.Name}}</strong><br><span style="color: #6b7280; font-size: 14px;">Talla: {{.Size}}</span></td>
          <td style="padding: 10px; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 10px; text-align: right;">{{.UnitPrice}}</td>
          <td style="padding: 10px; text-align: right; font-weight: bold;">{{.LineTotal}}</td>
        </tr>
{{- end}}
      </tbody>
    </table>
  </div>

  <div style="background: #10b981; color: white; padding: 16px; border-radius: 10px; margin-top: 16px;">
    <h2 style="margin-top: 0;">Resumen de Pago</h2>
    <p>Subtotal: {{.Subtotal}}</p>
    <p>Envío ({{.Carrier}}): GRATIS</p>
    <p style="font-size: 20px; font-weight: bold;">Total: {{.Total}}</p>
    <p><strong>Método de Pago:</strong> {{.PaymentMethod}}</p>
  </div>
</body>
</html>
`))

var customerTemplate = template.Must(template.New("customer_confirmation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Confirmación de Orden Air</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #10b981; color: white; padding: 24px; border-radius: 10px; text-align: center;">
    <h1 style="margin: 0;">Orden Confirmada</h1>
    <p style="margin: 8px 0 0 0;">¡Gracias por tu compra!</p>
  </div>

  <div style="background: #f9fafb; padding: 16px; border-radius: 10px; margin-top: 16px;">
    <h2 style="color: #10b981; margin-top: 0;">Hola {{.CustomerName}},</h2>
    <p>Tu orden ha sido recibida y confirmada exitosamente.</p>
    <p><strong>Número de Orden:</strong> {{.OrderNumber}}</p>
    <p><strong>Fecha:</strong> {{.Date}}</p>
  </div>

  <div style="background: #f9fafb; padding: 16px; border-radius: 10px; margin-top: 16px;">
    <h2 style="color: #10b981; margin-top: 0;">Productos Ordenados</h2>
    <table style="width: 100%; border-collapse: collapse; background: white;">
      <thead>
        <tr style="background: #10b981; color: white;">
          <th style="padding: 10px; text-align: left;">Producto</th>
          <th style="padding: 10px; text-align: center;">Cantidad</th>
          <th style="padding: 10px; text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>
{{- range .Items}}
        <tr style="border-bottom: 1px solid #e5e7eb;">
          <td style="padding: 10px;"><strong>{{.Name}}</strong><br><span style="color: #6b7280; font-size: 14px;">Talla: {{.Size}}</span></td>
          <td style="padding: 10px; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 10px; text-align: right; font-weight: bold;">{{.LineTotal}}</td>
        </tr>
{{- end}}
      </tbody>
    </table>
    <h3 style="color: #10b981; text-align: right; border-top: 2px solid #10b981; padding-top: 12px;">Total: {{.Total}}</h3>
  </div>

  <div style="background: #eff6ff; border: 2px solid #3b82f6; border-radius: 10px; padding: 16px; margin-top: 16px;">
    <h3 style="color: #1e40af; margin-top: 0;">Información de Envío</h3>
    <p style="color: #1e40af; margin-bottom: 0;">Tu orden será enviada mediante <strong>{{.Carrier}}</strong> a:<br>{{.Address}}, {{.City}}, {{.Province}}</p>
  </div>

  <div style="text-align: center; margin-top: 24px; padding: 16px; background: #f9fafb; border-radius: 10px;">
    <h3 style="color: #10b981; margin-top: 0;">¡Gracias por elegir Air!</h3>
    <p style="color: #6b7280; margin: 0;">"Siéntete libre, siéntete en el aire con Air"</p>
  </div>
</body>
</html>
`))
