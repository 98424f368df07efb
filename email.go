// seehuhn.de/go/signature - render hand-drawn signatures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package signature

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Size of the signature image in e-mail fragments.
const (
	EmailImageWidth  = 200
	EmailImageHeight = 80
)

const emailCaption = "(Sign and print full name)"

// RenderEmailHTML returns an HTML fragment for a signature field in an
// e-mail body. The fragment shows the label, a caption, the signature as
// an inline data URL image and the signer's name below a dotted rule.
// If name is empty, a row of dots is shown instead.
//
// Label and name are escaped, so arbitrary user input can be passed.
func RenderEmailHTML(d Drawing, label, name string) string {
	opts := Options{Width: EmailImageWidth, Height: EmailImageHeight}
	return emailHTML(label, name, RenderDataURL(d, opts))
}

// Attachment is a PNG image of a signature, for inclusion in an e-mail as
// an inline MIME part. Some mail clients do not display data URLs; these
// can show an attachment referenced by its Content-ID instead.
type Attachment struct {
	// ContentID identifies the MIME part, without angle brackets.
	ContentID string

	// Filename is the suggested file name of the image.
	Filename string

	// ContentType is the MIME type of Data.
	ContentType string

	// Data holds the PNG encoded image.
	Data []byte
}

// ImageSrc returns the URL which references the attachment from HTML.
func (a *Attachment) ImageSrc() string {
	return "cid:" + a.ContentID
}

// NewAttachment rasterizes d into an e-mail attachment. Unset canvas
// dimensions in opts default to the e-mail image size.
func NewAttachment(ctx context.Context, d Drawing, opts Options) (*Attachment, error) {
	if opts.Width == 0 && opts.Height == 0 {
		opts.Width = EmailImageWidth
		opts.Height = EmailImageHeight
	}
	data, err := RasterizeDrawing(ctx, d, opts)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &Attachment{
		ContentID:   id,
		Filename:    "signature-" + id + ".png",
		ContentType: "image/png",
		Data:        data,
	}, nil
}

// RenderEmailHTMLWithAttachment returns the same fragment as
// [RenderEmailHTML], but the image references the attachment a.
func RenderEmailHTMLWithAttachment(label, name string, a *Attachment) string {
	return emailHTML(label, name, a.ImageSrc())
}

func emailHTML(label, name, src string) string {
	signer := strings.Repeat(".", 40)
	if name != "" {
		signer = escapeXML(name)
	}
	w, h := strconv.Itoa(EmailImageWidth), strconv.Itoa(EmailImageHeight)

	b := &strings.Builder{}
	b.WriteString(`<div style="display:inline-block;text-align:center;font-family:Arial,Helvetica,sans-serif;">` + "\n")
	b.WriteString(`  <div style="font-weight:bold;">` + escapeXML(label) + "</div>\n")
	b.WriteString(`  <div style="font-style:italic;font-size:12px;color:#555555;">` + emailCaption + "</div>\n")
	b.WriteString(`  <div style="width:` + w + `px;height:` + h + `px;border:1px solid #cccccc;margin:8px auto;">` + "\n")
	b.WriteString(`    <img src="` + escapeXML(src) + `" width="` + w + `" height="` + h + `" alt="Signature" style="display:block;"/>` + "\n")
	b.WriteString("  </div>\n")
	b.WriteString(`  <div style="border-top:1px dotted #000000;padding-top:4px;">` + signer + "</div>\n")
	b.WriteString("</div>")
	return b.String()
}
