package transpiler

import "fmt"

// shimTemplate is the generated script: an IIFE that merges the message
// table into a shared i18n_messages global and installs the $L/msg
// lookup functions. Unknown codes render as "[code]"; {n} tokens are
// replaced by the nth extra argument when one is given, otherwise left
// in place.
const shimTemplate = `(function (win) {
    var messages = {
%s
    };

    if (typeof win.i18n_messages !== 'object' || win.i18n_messages === null) {
        win.i18n_messages = {};
    }
    for (var code in messages) {
        if (messages.hasOwnProperty(code)) {
            win.i18n_messages[code] = messages[code];
        }
    }

    var lookup = function (code) {
        var message = win.i18n_messages[code];
        if (message === undefined || message === null) {
            return '[' + code + ']';
        }
        var args = arguments;
        return message.replace(/\{(\d+)\}/g, function (token, index) {
            var arg = args[parseInt(index, 10) + 1];
            return arg === undefined ? token : arg;
        });
    };

    win.$L = lookup;
    win.msg = lookup;
})(this);
`

// Wrap embeds a rendered pair fragment into the runtime shim.
func Wrap(fragment string) string {
	return fmt.Sprintf(shimTemplate, fragment)
}
