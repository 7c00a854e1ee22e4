// Package fuzztests houses Go fuzz harnesses for the scanner. Its goal is
// to smoke test robustness and guard against panics, runaway allocation
// and broken token streams on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер в обоих диалектах,
// в fail-fast и keep-going режимах, и проверять инварианты потока токенов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/testkit, internal/diag.
package fuzztests
