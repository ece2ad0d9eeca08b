//go:build js && wasm

package main

import (
	"syscall/js"

	"classdump"
)

func jsError(msg string) any {
	return js.Global().Get("Promise").Call("reject", js.Global().Get("Error").New(msg))
}

func main() {
	// __wasm_dumpClass(Uint8Array) -> Promise<string>
	// Decodes a JVM class file from raw bytes and resolves with its
	// pretty-printed JSON document.
	js.Global().Set("__wasm_dumpClass", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) != 1 {
			return jsError("dumpClass requires exactly 1 argument (Uint8Array)")
		}

		handler := js.FuncOf(func(_ js.Value, promise []js.Value) any {
			resolve := promise[0]
			reject := promise[1]

			go func() {
				jsArr := args[0]
				data := make([]byte, jsArr.Get("length").Int())
				js.CopyBytesToGo(data, jsArr)

				out, err := classdump.DumpString(data)
				if err != nil {
					reject.Invoke(js.Global().Get("Error").New(err.Error()))
					return
				}
				resolve.Invoke(out)
			}()

			return nil
		})

		return js.Global().Get("Promise").New(handler)
	}))

	select {}
}
