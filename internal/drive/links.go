// Package drive 从富文本单元格中提取并规范化 Google Drive 链接
// 输入是形状已知的窄模式（报名系统生成的 anchor/img 片段），刻意不做通用 HTML 解析
package drive

import (
	"html"
	"net/url"
	"regexp"
	"strings"
)

var (
	hrefRe   = regexp.MustCompile(`(?i)href=['"]?([^'" >]+)`)
	imgSrcRe = regexp.MustCompile(`(?i)<img[^>]*src=['"]([^'"]+)['"]`)

	// 先认 /file/d/<id> 的规范路径，再退到宽松的 /d/<id>，最后才看 ?id= 参数
	fileIDPathRe = regexp.MustCompile(`/file/d/([A-Za-z0-9_-]+)`)
	genericIDRe  = regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`)
)

// ExtractHref 取富文本中第一个 anchor 的 href，实体解码并去空白
// 无输入或没有 anchor 时返回空串
func ExtractHref(cell string) string {
	m := hrefRe.FindStringSubmatch(cell)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}

// ExtractFileID 从 URL 中提取 Drive 文件 ID；非 Drive 域名一律返回空串
func ExtractFileID(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Host)
	if !strings.Contains(host, "drive.google.com") && !strings.Contains(host, "docs.google.com") {
		return ""
	}

	if m := fileIDPathRe.FindStringSubmatch(parsed.Path); m != nil {
		return m[1]
	}
	if m := genericIDRe.FindStringSubmatch(parsed.Path); m != nil {
		return m[1]
	}
	if id := parsed.Query().Get("id"); id != "" {
		return id
	}
	return ""
}

// ViewURL 规范化为固定格式的查看链接；提不出文件 ID 时原样返回
// 保证原始链接存在时始终有可点的内容
func ViewURL(rawURL string) string {
	id := ExtractFileID(rawURL)
	if id == "" {
		return rawURL
	}
	return "https://drive.google.com/file/d/" + id + "/view?usp=drive_link"
}

// PreviewURL 内嵌预览链接；提不出文件 ID 时为空串
func PreviewURL(rawURL string) string {
	id := ExtractFileID(rawURL)
	if id == "" {
		return ""
	}
	return "https://drive.google.com/file/d/" + id + "/preview"
}

// ThumbnailURL 缩略图链接；提不出文件 ID 时为空串
func ThumbnailURL(rawURL string) string {
	id := ExtractFileID(rawURL)
	if id == "" {
		return ""
	}
	return "https://drive.google.com/thumbnail?id=" + id + "&sz=w400"
}

// DocumentURL 从富文本单元格提取文档链接并规范化
func DocumentURL(cell string) string {
	href := ExtractHref(cell)
	if href == "" {
		return ""
	}
	return ViewURL(href)
}

// ExtractPhotoURL 提取展示用照片链接
// 优先取内联 <img> 的 src；src 指向 Drive 时换成缩略图链接（直链渲染不稳定）
// 没有内联图片时退而用 anchor href 的缩略图
func ExtractPhotoURL(cell string) string {
	if m := imgSrcRe.FindStringSubmatch(cell); m != nil {
		src := strings.TrimSpace(html.UnescapeString(m[1]))
		if thumb := ThumbnailURL(src); thumb != "" {
			return thumb
		}
		return src
	}

	if href := ExtractHref(cell); href != "" {
		if thumb := ThumbnailURL(href); thumb != "" {
			return thumb
		}
	}
	return ""
}

// ExtractPhotoFullURL 提取原始分辨率照片链接，只认内联 <img> 的 src
func ExtractPhotoFullURL(cell string) string {
	m := imgSrcRe.FindStringSubmatch(cell)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}
