/*
 * Copyright 2023 imgop Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package imgop

import (
    `io`
)

// Option is the property setter function for pass options.
type Option func(*_Options)

type _Options struct {
    dump io.Writer
}

func newOptions(opts ...Option) _Options {
    var cfg _Options
    for _, fn := range opts {
        fn(&cfg)
    }
    return cfg
}

// WithDump makes the pass write a dump of the module to w before and after
// it runs.
func WithDump(w io.Writer) Option {
    return func(cfg *_Options) {
        cfg.dump = w
    }
}
