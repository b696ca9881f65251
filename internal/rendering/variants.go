package rendering

// The three template variants. The modern variant is the full layout; the
// professional and creative variants are intentionally partial placeholders
// that render only the header and summary, matching the shipped revision.

const modernHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.FullName}}</title>
</head>
<body style="margin: 0; font-family: {{.FontFamily}}; color: #111827; background-color: #ffffff;">
<header style="background-color: {{.PrimaryColor}}; color: #ffffff; padding: 32px 40px;">
  <h1 style="margin: 0; font-size: 28px;">{{.FullName}}</h1>
  {{if .Title}}<p style="margin: 4px 0 0; font-size: 16px; opacity: 0.9;">{{.Title}}</p>{{end}}
  <p style="margin: 12px 0 0; font-size: 13px;">
    {{if .Email}}<span>{{.Email}}</span>{{end}}
    {{if .Phone}}<span style="margin-left: 16px;">{{.Phone}}</span>{{end}}
    {{if .Address}}<span style="margin-left: 16px;">{{.Address}}</span>{{end}}
  </p>
</header>
<main style="padding: 24px 40px;">
{{if .Summary}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; border-bottom: 2px solid {{.SecondaryColor}}; padding-bottom: 4px; font-size: 18px;">Summary</h2>
    <p style="font-size: 14px; line-height: 1.5;">{{.Summary}}</p>
  </section>
{{end}}
{{if .Work}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; border-bottom: 2px solid {{.SecondaryColor}}; padding-bottom: 4px; font-size: 18px;">Work Experience</h2>
    {{range .Work}}
    <article style="margin-bottom: 16px;">
      <h3 style="margin: 0; font-size: 15px;">{{.Position}}</h3>
      <p style="margin: 2px 0; font-size: 13px; font-weight: 600;">{{.Company}}{{if .Location}} · {{.Location}}{{end}}</p>
      {{if .DateRange}}<p style="margin: 2px 0; font-size: 12px; color: #6b7280;">{{.DateRange}}</p>{{end}}
      {{if .Description}}<p style="margin: 6px 0 0; font-size: 13px; line-height: 1.5;">{{.Description}}</p>{{end}}
    </article>
    {{end}}
  </section>
{{end}}
{{if .Education}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; border-bottom: 2px solid {{.SecondaryColor}}; padding-bottom: 4px; font-size: 18px;">Education</h2>
    {{range .Education}}
    <article style="margin-bottom: 16px;">
      <h3 style="margin: 0; font-size: 15px;">{{.Degree}}{{if .Field}}, {{.Field}}{{end}}</h3>
      <p style="margin: 2px 0; font-size: 13px; font-weight: 600;">{{.Institution}}{{if .Location}} · {{.Location}}{{end}}</p>
      {{if .DateRange}}<p style="margin: 2px 0; font-size: 12px; color: #6b7280;">{{.DateRange}}</p>{{end}}
      {{if .Description}}<p style="margin: 6px 0 0; font-size: 13px; line-height: 1.5;">{{.Description}}</p>{{end}}
    </article>
    {{end}}
  </section>
{{end}}
{{if .Skills}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; border-bottom: 2px solid {{.SecondaryColor}}; padding-bottom: 4px; font-size: 18px;">Skills</h2>
    <ul style="list-style: none; padding: 0; margin: 0; font-size: 13px;">
      {{range .Skills}}
      <li style="margin-bottom: 4px;">{{.Name}} <span style="color: {{$.PrimaryColor}};">{{.Level}}</span></li>
      {{end}}
    </ul>
  </section>
{{end}}
{{if .Certifications}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; border-bottom: 2px solid {{.SecondaryColor}}; padding-bottom: 4px; font-size: 18px;">Certifications</h2>
    {{range .Certifications}}
    <article style="margin-bottom: 10px; font-size: 13px;">
      <span style="font-weight: 600;">{{.Name}}</span> — {{.Issuer}}{{if .Date}} ({{.Date}}){{end}}
      {{if .URL}}<br><a href="{{.URL}}" style="color: {{$.PrimaryColor}};">{{.URL}}</a>{{end}}
    </article>
    {{end}}
  </section>
{{end}}
{{if .SocialLinks}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; border-bottom: 2px solid {{.SecondaryColor}}; padding-bottom: 4px; font-size: 18px;">Social Links</h2>
    <ul style="list-style: none; padding: 0; margin: 0; font-size: 13px;">
      {{range .SocialLinks}}
      <li style="margin-bottom: 4px;">{{.Platform}}: <a href="{{.URL}}" style="color: {{$.PrimaryColor}};">{{.URL}}</a></li>
      {{end}}
    </ul>
  </section>
{{end}}
</main>
</body>
</html>
`

const professionalHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.FullName}}</title>
</head>
<body style="margin: 0; font-family: {{.FontFamily}}; color: #111827; background-color: {{.SecondaryColor}};">
<header style="border-bottom: 3px solid {{.PrimaryColor}}; padding: 32px 40px;">
  <h1 style="margin: 0; font-size: 26px; color: {{.PrimaryColor}};">{{.FullName}}</h1>
  {{if .Title}}<p style="margin: 4px 0 0; font-size: 15px;">{{.Title}}</p>{{end}}
  <p style="margin: 10px 0 0; font-size: 13px; color: #6b7280;">
    {{if .Email}}<span>{{.Email}}</span>{{end}}
    {{if .Phone}}<span style="margin-left: 16px;">{{.Phone}}</span>{{end}}
  </p>
</header>
<main style="padding: 24px 40px;">
{{if .Summary}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; font-size: 17px;">Summary</h2>
    <p style="font-size: 14px; line-height: 1.5;">{{.Summary}}</p>
  </section>
{{end}}
  <p style="font-size: 12px; color: #9ca3af;">Full professional layout coming soon.</p>
</main>
</body>
</html>
`

const creativeHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.FullName}}</title>
</head>
<body style="margin: 0; font-family: {{.FontFamily}}; color: #111827; background-color: #ffffff;">
<header style="background-color: {{.SecondaryColor}}; border-left: 8px solid {{.PrimaryColor}}; padding: 32px 40px;">
  <h1 style="margin: 0; font-size: 28px; color: {{.PrimaryColor}};">{{.FullName}}</h1>
  {{if .Title}}<p style="margin: 4px 0 0; font-size: 15px;">{{.Title}}</p>{{end}}
  <p style="margin: 10px 0 0; font-size: 13px; color: #6b7280;">
    {{if .Email}}<span>{{.Email}}</span>{{end}}
    {{if .Phone}}<span style="margin-left: 16px;">{{.Phone}}</span>{{end}}
  </p>
</header>
<main style="padding: 24px 40px;">
{{if .Summary}}
  <section>
    <h2 style="color: {{.PrimaryColor}}; font-size: 17px;">Summary</h2>
    <p style="font-size: 14px; line-height: 1.5;">{{.Summary}}</p>
  </section>
{{end}}
  <p style="font-size: 12px; color: #9ca3af;">Full creative layout coming soon.</p>
</main>
</body>
</html>
`
