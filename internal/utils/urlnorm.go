package utils

import (
	"net/url"
	"strings"
)

// codeHostDomain 代码托管站点按 owner/repo 粒度去重，而不是整个域名。
const codeHostDomain = "github.com"

// NormalizeURL 将提交的 URL 归一化为两种形式：
//   - rootIdentity: 用于查重的根标识（去掉子域名和路径，GitHub 保留 owner/repo）
//   - cleanURL: 实际入库展示的干净 URL（非 GitHub 只保留 origin）
//
// 解析失败时原样返回去空格后的输入，永不报错。
func NormalizeURL(raw string) (rootIdentity, cleanURL string) {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return trimmed, trimmed
	}

	host := strings.ToLower(u.Hostname())

	if host == codeHostDomain {
		segments := splitPath(u.Path)
		if len(segments) >= 2 {
			repo := codeHostDomain + "/" + segments[0] + "/" + segments[1]
			return repo, "https://" + repo
		}
		return host, u.Scheme + "://" + strings.ToLower(u.Host)
	}

	rootIdentity = host
	labels := strings.Split(host, ".")
	if len(labels) > 2 {
		// 去掉子域名，只保留最后两级 (cn.vuejs.org -> vuejs.org)
		rootIdentity = strings.Join(labels[len(labels)-2:], ".")
	}

	// 只保留 origin（scheme + host + port），丢弃路径、查询串和锚点
	return rootIdentity, u.Scheme + "://" + strings.ToLower(u.Host)
}

// splitPath 拆分路径并过滤空段。
func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
