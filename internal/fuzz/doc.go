// Package fuzztests houses Go fuzz harnesses that exercise the front of the
// quill pipeline (source -> parsers -> document). Its goal is to smoke test
// robustness: no panics, no hangs, and token spans that always partition the
// input.
//
// Назначение: прогонять произвольные байты через FileSet, все парсеры и
// построение документа.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/parsers, internal/document,
// internal/dict, internal/testkit.

package fuzztests
