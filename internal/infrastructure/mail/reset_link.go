// Package mail implementa el puerto auth.Mailer: SMTP, publicación AMQP para un worker externo y log.
package mail

import (
	"fmt"
	"net/url"
)

// ResetLink arma el enlace de recuperación: redirect (o base si es nil) con el parámetro token.
// Conserva los parámetros que la URL ya traiga.
func ResetLink(base string, redirect *string, token string) (string, error) {
	raw := base
	if redirect != nil && *redirect != "" {
		raw = *redirect
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("url de recuperación inválida: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

const resetSubject = "Recupera tu contraseña"

func resetBody(link string) string {
	return fmt.Sprintf(`<p>Recibimos una solicitud para cambiar la contraseña de tu organización.</p>
<p><a href="%s">Cambiar contraseña</a></p>
<p>El enlace vence en una hora. Si no hiciste la solicitud, ignora este correo.</p>`, link)
}
